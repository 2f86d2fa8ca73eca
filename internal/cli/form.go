package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"haversine/internal/tui"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive calculator form",
	Long: `Launch an interactive form with two fields, Point A and Point B.

Controls:
  Enter      - Calculate
  Ctrl+R     - Reset
  Tab        - Next field
  Shift+Tab  - Previous field
  Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	form := tui.NewForm(distanceService, tui.DefaultStyles())

	p := tea.NewProgram(form,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}
