package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jianifeng/folio/internal/mode"
	"github.com/jianifeng/folio/internal/tui"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the portfolio in the terminal",
		Long:  previewLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			catalog, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			ctx := mode.WithProvider(cmd.Context(), mode.NewProvider())
			p := tea.NewProgram(tui.NewModel(ctx, catalog),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
