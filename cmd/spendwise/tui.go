package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Long:  `Browse category totals interactively. Switch periods with w/m/y, quit with q.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, cleanup, err := initBudget(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			program := tea.NewProgram(tui.New(manager), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run dashboard: %w", err)
			}
			return nil
		},
	}
}
