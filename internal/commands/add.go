package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/ledger"
	"github.com/track2success-dev/track2success/internal/model"
)

const flagDateFormat = "2006-01-02"

func newAddCommand(dir *string) *cobra.Command {
	var kind string
	var amount string
	var date string
	var category string
	var label string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense or income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse(flagDateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			s, err := openSession(*dir)
			if err != nil {
				return err
			}

			id, err := s.store.Add(ledger.AddParams{
				Kind:     model.Kind(kind),
				Amount:   amt,
				Date:     when,
				Category: category,
				Label:    label,
			})
			if err != nil {
				return err
			}

			if err := s.save(); err != nil {
				return err
			}

			cmd.Printf("Added transaction %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(model.KindExpense), "transaction kind (expense or income)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&category, "category", "", "category label (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&label, "label", "", "optional display label")

	return cmd
}
