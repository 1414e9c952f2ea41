package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianifeng/folio/internal/render"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify both modes show the same content",
		Long:  checkLong,
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
			renderer, err := render.NewRenderer()
			if err != nil {
				return err
			}

			result, err := render.CheckInvariance(cmd.Context(), render.NewComposer(renderer, catalog))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				for _, f := range result.Art.Sorted() {
					fmt.Fprintln(out, f)
				}
			}
			if result.OK() {
				fmt.Fprintf(out, "ok: %d facts shown in both modes\n", len(result.Art))
				return nil
			}

			for _, f := range result.OnlyArt {
				fmt.Fprintf(out, "only in art:  %s\n", f)
			}
			for _, f := range result.OnlyCode {
				fmt.Fprintf(out, "only in code: %s\n", f)
			}
			return fmt.Errorf("content differs between modes: %d facts only in art, %d only in code",
				len(result.OnlyArt), len(result.OnlyCode))
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "List every fact")
	return cmd
}
