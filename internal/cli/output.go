package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/rshade/ecopayback/internal/config"
	"github.com/rshade/ecopayback/internal/format"
	"github.com/rshade/ecopayback/internal/payback"
	"github.com/rshade/ecopayback/internal/tui"
)

//nolint:gochecknoglobals // Same codec configuration as the HTTP API.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// exitCodeInvalidInput is the process exit code for rejected calculator input.
const exitCodeInvalidInput = 2

// ExitError carries a process exit code alongside the error that caused it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// invalidInput wraps a calculator error so main exits with
// exitCodeInvalidInput.
func invalidInput(err error) error {
	if errors.Is(err, payback.ErrInvalidInput) {
		return &ExitError{Code: exitCodeInvalidInput, Err: err}
	}
	return err
}

// OutputParams holds the flags shared by every command that renders results.
type OutputParams struct {
	Output string
	Locale string
}

func addOutputFlags(cmd *cobra.Command, params *OutputParams) {
	cmd.Flags().StringVar(&params.Output, "output", config.GetDefaultOutputFormat(), "Output format (table, json)")
	cmd.Flags().StringVar(&params.Locale, "locale", config.GetLocale(), "Display locale (pt-BR, en)")
}

// formatter validates the output flags and returns the formatter for the
// requested locale.
func (p OutputParams) formatter() (*format.Formatter, error) {
	switch strings.ToLower(p.Output) {
	case config.FormatTable, config.FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q (expected %s or %s)",
			config.ErrInvalidFormat, p.Output, config.FormatTable, config.FormatJSON)
	}
	return format.New(p.Locale)
}

// CalculationOutput is the JSON document written by --output json.
type CalculationOutput struct {
	Results  []payback.InvestmentResult `json:"results"`
	Cards    []format.Card              `json:"cards"`
	Trees    payback.TreeSummary        `json:"trees"`
	Best     *payback.InvestmentType    `json:"best"`
	Messages OutputMessages             `json:"messages"`
}

// OutputMessages holds the localized summary lines.
type OutputMessages struct {
	Feedback string `json:"feedback"`
	Trees    string `json:"trees"`
	Best     string `json:"best"`
}

// renderResults writes the known results of state, highlighting the winner.
// calcErr selects the feedback message; it is the caller's job to return it.
func renderResults(w io.Writer, params OutputParams, f *format.Formatter, state *payback.ResultState, calcErr error) error {
	rep := f.Report(state)
	cards := rep.PresentCards()

	if strings.EqualFold(params.Output, config.FormatJSON) {
		out := CalculationOutput{
			Results: state.Results(),
			Cards:   cards,
			Trees:   rep.Trees,
			Messages: OutputMessages{
				Feedback: f.Feedback(calcErr),
				Trees:    rep.TreeLine,
				Best:     rep.BestLine,
			},
		}
		if rep.HasWinner {
			winner := rep.Winner
			out.Best = &winner
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	mode := tui.DetectOutputMode(false, false, false)
	if mode == tui.OutputModeInteractive {
		mode = tui.OutputModeStyled
	}

	var sb strings.Builder
	if calcErr != nil {
		if mode == tui.OutputModePlain {
			sb.WriteString(f.Feedback(calcErr))
		} else {
			sb.WriteString(tui.RenderFeedback(f.Feedback(calcErr), true))
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString(tui.RenderReport(rep, cards, mode))

	_, err := io.WriteString(w, sb.String())
	return err
}
