package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/model"
)

func newRemoveCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing id %q: %w", args[0], err)
			}

			s, err := openSession(*dir)
			if err != nil {
				return err
			}

			txn, err := s.store.Remove(model.ID(id))
			if err != nil {
				return err
			}

			if err := s.save(); err != nil {
				return err
			}

			cmd.Printf("Removed %d: %s\n", txn.ID, s.renderer().Describe(txn))
			return nil
		},
	}
}
