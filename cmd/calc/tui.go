package main

import (
	"fmt"

	"calc/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Perform one calculation in a full-screen form",
	Long: `Opens a full-screen form to collect the two numbers and the
operator, then prints the outcome. Esc or Ctrl+C cancels without output.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// Factory for the form program, overridable in tests
var runCalcForm = func(m ui.CalcFormModel) (ui.CalcFormModel, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	return final.(ui.CalcFormModel), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	m, err := runCalcForm(ui.NewCalcFormModel())
	if err != nil {
		return fmt.Errorf("form failed: %w", err)
	}

	if m.Cancelled || !m.Completed {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	return printOutcome(cmd, m.Operand1, m.Operand2, string(m.Operator))
}
