package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecopayback/internal/format"
)

// Card layout.
const (
	cardWidth    = 36
	cardsPerRow  = 2
	labelPadding = 20
)

// RenderCard renders one result card. The highlighted card gets a thick
// border in the highlight color and a star after its title.
func RenderCard(c format.Card) string {
	borderColor := ColorBorder
	border := lipgloss.RoundedBorder()
	title := c.Title
	if c.Highlight {
		borderColor = ColorHighlight
		border = lipgloss.ThickBorder()
		title += " " + IconStar
	}

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	if !c.Present {
		valueStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	for _, m := range c.Metrics {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelPadding, m.Label)))
		sb.WriteString(valueStyle.Render(m.Value))
	}
	return box.Render(sb.String())
}

// RenderCards lays cards out in rows of two.
func RenderCards(cards []format.Card) string {
	if len(cards) == 0 {
		return ""
	}
	rows := make([]string, 0, (len(cards)+cardsPerRow-1)/cardsPerRow)
	for i := 0; i < len(cards); i += cardsPerRow {
		end := min(i+cardsPerRow, len(cards))
		rendered := make([]string, 0, cardsPerRow)
		for _, c := range cards[i:end] {
			rendered = append(rendered, RenderCard(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderSummary renders the fastest-payback and tree equivalence lines.
func RenderSummary(rep format.Report) string {
	bestStyle := lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	if rep.HasWinner {
		bestStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	}
	treeStyle := lipgloss.NewStyle().Foreground(ColorOK)
	if rep.Trees.IsEmpty {
		treeStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	}

	return bestStyle.Render(rep.BestLine) + "\n" + treeStyle.Render(IconTree+" "+rep.TreeLine)
}

// RenderFeedback renders the message shown after a submission.
func RenderFeedback(text string, failed bool) string {
	if failed {
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render(IconCross + " " + text)
	}
	return lipgloss.NewStyle().Foreground(ColorOK).Render(IconCheck + " " + text)
}

// RenderPlain renders cards and summary as unstyled text.
func RenderPlain(rep format.Report, cards []format.Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.Title)
		if c.Highlight {
			sb.WriteString(" *")
		}
		sb.WriteString("\n")
		for _, m := range c.Metrics {
			fmt.Fprintf(&sb, "  %-*s%s\n", labelPadding, m.Label, m.Value)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rep.BestLine)
	sb.WriteString("\n")
	sb.WriteString(rep.TreeLine)
	sb.WriteString("\n")
	return sb.String()
}

// RenderReport renders the given cards and the report summary for mode.
func RenderReport(rep format.Report, cards []format.Card, mode OutputMode) string {
	if mode == OutputModePlain {
		return RenderPlain(rep, cards)
	}
	return RenderCards(cards) + "\n" + RenderSummary(rep) + "\n"
}
