package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/ecopayback/internal/config"
	"github.com/rshade/ecopayback/internal/format"
	"github.com/rshade/ecopayback/internal/logging"
	"github.com/rshade/ecopayback/internal/payback"
	"github.com/rshade/ecopayback/internal/tui"
)

// errNotInteractive is returned when the form is started without a terminal.
var errNotInteractive = errors.New("the form needs an interactive terminal; use the calculator commands or compare instead")

// NewFormCmd creates the "form" subcommand, an interactive calculator form.
func NewFormCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Interactive calculator form",
		Long: `Opens an interactive form with one tab per investment. Tab switches the
investment, the arrow keys move between fields and enter calculates. Results
stay on screen, with the fastest payback highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeForm(cmd, locale)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", config.GetLocale(), "Display locale (pt-BR, en)")
	return cmd
}

func executeForm(cmd *cobra.Command, locale string) error {
	f, err := format.New(locale)
	if err != nil {
		return err
	}
	if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive {
		return errNotInteractive
	}

	log := logging.FromContext(cmd.Context())
	state := payback.NewResultState().WithLogger(*log)
	model := tui.NewFormModel(state, f)

	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}

	// Leave the last results on the normal screen.
	if len(state.Results()) > 0 {
		rep := f.Report(state)
		_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep, rep.PresentCards(), tui.OutputModeStyled))
	}
	return err
}
