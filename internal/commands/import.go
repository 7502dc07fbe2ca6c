package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/importer"
)

func newImportCommand(dir *string) *cobra.Command {
	var format string
	var category string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			s, err := openSession(*dir)
			if err != nil {
				return err
			}

			for _, row := range rows {
				if _, err := s.store.Add(row.AddParams(category)); err != nil {
					return fmt.Errorf("importing row dated %s: %w", row.Date.Format(flagDateFormat), err)
				}
			}

			if err := s.save(); err != nil {
				return err
			}

			cmd.Printf("Imported %d transaction(s)\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "bank CSV format")
	cmd.Flags().StringVar(&category, "category", "Imported", "category for imported transactions")

	return cmd
}
