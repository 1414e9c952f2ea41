package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jianifeng/folio/internal/content"
	"github.com/jianifeng/folio/internal/contentdb"
)

func newImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import content into a SQLite database",
		Long:  importLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			if a.cfg.ContentDB == "" {
				return errors.New("no database given, set --content-db or FOLIO_CONTENT_DB")
			}

			source := a.cfg.ContentPath
			if len(args) == 1 {
				source = args[0]
			}
			c, err := content.Load(source)
			if err != nil {
				return err
			}

			store, err := contentdb.Open(cmd.Context(), a.cfg.ContentDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(cmd.Context(), c); err != nil {
				return err
			}

			items := 0
			for _, list := range c.Collections() {
				items += len(list)
			}
			if source == "" {
				source = content.DefaultPath
			}
			a.log.With("source", source, "db", a.cfg.ContentDB, "items", items).Info("content imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d items from %s into %s\n", items, source, a.cfg.ContentDB)
			return nil
		},
	}
}
