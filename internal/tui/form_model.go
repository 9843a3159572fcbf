package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/ecopayback/internal/format"
	"github.com/rshade/ecopayback/internal/payback"
)

// FormState represents the current state of the form TUI.
type FormState int

const (
	// FormStateEditing indicates the user is filling in fields.
	FormStateEditing FormState = iota
	// FormStateQuitting indicates the application is exiting.
	FormStateQuitting
)

const (
	formDefaultWidth  = 80
	formDefaultHeight = 24
	inputCharLimit    = 32
	inputWidth        = 16
)

// FormModel is the Bubble Tea model for the interactive calculator form.
// Tab and shift+tab switch investment, up and down move between fields and
// enter calculates the active investment.
type FormModel struct {
	results   *payback.ResultState
	formatter *format.Formatter

	tabs    []payback.InvestmentType
	active  int
	inputs  map[payback.InvestmentType][]textinput.Model
	focused int

	feedback string
	failed   bool

	state  FormState
	width  int
	height int
}

// NewFormModel creates a form that records calculations into results.
func NewFormModel(results *payback.ResultState, f *format.Formatter) *FormModel {
	m := &FormModel{
		results:   results,
		formatter: f,
		tabs:      payback.AllInvestments,
		inputs:    make(map[payback.InvestmentType][]textinput.Model, len(payback.AllInvestments)),
		state:     FormStateEditing,
		width:     formDefaultWidth,
		height:    formDefaultHeight,
	}

	for _, inv := range m.tabs {
		names := payback.FieldNames(inv)
		inputs := make([]textinput.Model, len(names))
		for i := range names {
			ti := textinput.New()
			ti.Placeholder = "0"
			ti.CharLimit = inputCharLimit
			ti.Width = inputWidth
			ti.Prompt = ""
			inputs[i] = ti
		}
		m.inputs[inv] = inputs
	}
	m.focusCurrent()
	return m
}

// Init starts the cursor blinking.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, m.updateFocused(msg)
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only navigation keys are handled; the rest go to the input.
func (m *FormModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.state = FormStateQuitting
		return m, tea.Quit

	case tea.KeyTab:
		m.switchTab(1)
		return m, nil

	case tea.KeyShiftTab:
		m.switchTab(-1)
		return m, nil

	case tea.KeyUp:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyEnter:
		m.calculate()
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *FormModel) updateFocused(msg tea.Msg) tea.Cmd {
	inputs := m.inputs[m.Active()]
	if len(inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	inputs[m.focused], cmd = inputs[m.focused].Update(msg)
	return cmd
}

func (m *FormModel) switchTab(delta int) {
	m.blurCurrent()
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.focused = 0
	m.focusCurrent()
}

func (m *FormModel) moveFocus(delta int) {
	inputs := m.inputs[m.Active()]
	next := m.focused + delta
	if next < 0 || next >= len(inputs) {
		return
	}
	m.blurCurrent()
	m.focused = next
	m.focusCurrent()
}

func (m *FormModel) focusCurrent() {
	if inputs := m.inputs[m.Active()]; len(inputs) > 0 {
		inputs[m.focused].Focus()
	}
}

func (m *FormModel) blurCurrent() {
	if inputs := m.inputs[m.Active()]; len(inputs) > 0 {
		inputs[m.focused].Blur()
	}
}

// calculate runs the active investment's calculator on the current field
// values. An invalid form clears that investment's result.
func (m *FormModel) calculate() {
	inv := m.Active()
	names := payback.FieldNames(inv)
	fields := make(payback.FieldSet, len(names))
	for i, name := range names {
		fields[name] = m.inputs[inv][i].Value()
	}

	_, err := m.results.Run(inv, fields)
	m.feedback = m.formatter.Feedback(err)
	m.failed = err != nil
}

// Active returns the investment whose fields are shown.
func (m *FormModel) Active() payback.InvestmentType {
	return m.tabs[m.active]
}

// Focused returns the name of the focused field.
func (m *FormModel) Focused() string {
	return payback.FieldNames(m.Active())[m.focused]
}

// SetField sets a field of the active investment. Unknown names are ignored.
func (m *FormModel) SetField(name, value string) {
	for i, n := range payback.FieldNames(m.Active()) {
		if n == name {
			m.inputs[m.Active()][i].SetValue(value)
			return
		}
	}
}

// Feedback returns the latest submission message and whether it reported
// invalid input.
func (m *FormModel) Feedback() (string, bool) {
	return m.feedback, m.failed
}

// State returns the current form state.
func (m *FormModel) State() FormState {
	return m.state
}

// View renders the current view.
func (m *FormModel) View() string {
	if m.state == FormStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderFields())
	sb.WriteString("\n")

	if m.feedback != "" {
		sb.WriteString(RenderFeedback(m.feedback, m.failed))
		sb.WriteString("\n\n")
	}

	rep := m.formatter.Report(m.results)
	sb.WriteString(RenderCards(rep.Cards))
	sb.WriteString("\n")
	sb.WriteString(RenderSummary(rep))
	sb.WriteString("\n\n")

	help := lipgloss.NewStyle().Foreground(ColorMuted)
	sb.WriteString(help.Render("tab/shift+tab: investment • ↑/↓: field • enter: calculate • esc: quit"))

	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
}

func (m *FormModel) renderTabs() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ColorHighlight)
	inactiveStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	tabs := make([]string, 0, len(m.tabs))
	for i, inv := range m.tabs {
		label := m.formatter.InvestmentLabel(inv)
		if i == m.active {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveStyle.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m *FormModel) renderFields() string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	focusStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	var sb strings.Builder
	inv := m.Active()
	for i, name := range payback.FieldNames(inv) {
		label := m.formatter.FieldLabel(name)
		style := labelStyle
		marker := "  "
		if i == m.focused {
			style = focusStyle
			marker = "> "
		}
		sb.WriteString(style.Render(marker + padRight(label, labelPadding+4)))
		sb.WriteString(m.inputs[inv][i].View())
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
