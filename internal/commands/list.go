package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/model"
	"github.com/track2success-dev/track2success/internal/render"
)

func newListCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions, expenses then incomes, sorted by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}

			rend := s.renderer()
			cmd.Println("Expenses:")
			printSorted(cmd, rend, s.store.Expenses())
			cmd.Println()
			cmd.Println("Incomes:")
			printSorted(cmd, rend, s.store.Incomes())
			return nil
		},
	}
}

func printSorted(cmd *cobra.Command, rend *render.Renderer, txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool { return txns[i].Date.Before(txns[j].Date) })
	for _, txn := range txns {
		cmd.Printf("  [%d] %s\n", txn.ID, rend.Describe(txn))
	}
}
