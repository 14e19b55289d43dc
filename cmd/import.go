package cmd

import (
	"context"
	"fmt"

	"github.com/gofinances/backend/internal/importer"
	"github.com/gofinances/backend/internal/ledger"
	"github.com/gofinances/backend/internal/models"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with the columns title, type, value and category.

The first line is a header and always skipped. Lines with an empty field are
ignored. Missing categories are created. The file is removed after a
successful import unless --keep is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			db, err := connect(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()

			var source importer.Source = importer.FileSource{Path: args[0]}
			if keep {
				source = keptSource{source}
			}

			service := ledger.NewService(models.NewStore(db))
			transactions, err := service.ImportTransactions(cmdContext(cmd), source)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d transactions\n", len(transactions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep the file after the import")
	return cmd
}

// keptSource is a Source that is never removed.
type keptSource struct {
	importer.Source
}

func (keptSource) Remove() error {
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
