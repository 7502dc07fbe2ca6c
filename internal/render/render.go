// Package render turns transactions and report documents into the display
// strings the app has always shown. Rendering is a pure function of the
// value; nothing here feeds back into identity or aggregation.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/track2success-dev/track2success/internal/model"
	"github.com/track2success-dev/track2success/internal/report"
)

const headerDateFormat = "02 Jan"

// symbols maps the currency codes accepted in config to display symbols.
var symbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Renderer formats amounts with the project's configured currency.
type Renderer struct {
	symbol string
}

// New creates a Renderer for the given currency code. Unknown codes are
// prefixed verbatim, e.g. "CHF 12.00".
func New(currency string) *Renderer {
	if sym, ok := symbols[strings.ToUpper(currency)]; ok {
		return &Renderer{symbol: sym}
	}
	return &Renderer{symbol: currency + " "}
}

// Describe returns the one-line description of a transaction. The optional
// label covers what used to be per-subtype wording (salary, stock growth,
// utility type, miscellaneous details) without distinct types.
func (r *Renderer) Describe(txn model.Transaction) string {
	var base string
	switch txn.Kind {
	case model.KindExpense:
		base = fmt.Sprintf("Expense: %s, Amount: %s%s, Date: %s",
			txn.Category, r.symbol, txn.Amount.StringFixed(2), txn.Date.Format("2006-01-02"))
	default:
		base = fmt.Sprintf("Income: Amount: %s%s, Date: %s",
			r.symbol, txn.Amount.StringFixed(2), txn.Date.Format("2006-01-02"))
	}
	if txn.Label != "" {
		return txn.Label + ": " + base
	}
	return base
}

// WeeklyText renders a weekly report document as plain text.
func (r *Renderer) WeeklyText(doc report.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly Report: %s - %s\n\n",
		doc.WeekStart.Format(headerDateFormat), doc.WeekEnd.Format(headerDateFormat))

	b.WriteString("Expenses:\n")
	r.writeTotals(&b, doc.Expenses)

	b.WriteString("\nIncomes:\n")
	r.writeTotals(&b, doc.Incomes)

	return b.String()
}

// SummaryText renders the whole-store summary as plain text.
func (r *Renderer) SummaryText(s report.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Income:  %s%s\n", r.symbol, s.Income.StringFixed(2))
	fmt.Fprintf(&b, "Total Expense: %s%s\n", r.symbol, s.Expense.StringFixed(2))
	fmt.Fprintf(&b, "Net Savings:   %s%s\n", r.symbol, s.Net.StringFixed(2))
	return b.String()
}

// WeeklyFileName returns the report file name for a week, e.g.
// "Weekly_Report_04 Mar.txt".
func WeeklyFileName(weekStart time.Time) string {
	return fmt.Sprintf("Weekly_Report_%s.txt", weekStart.Format(headerDateFormat))
}

func (r *Renderer) writeTotals(b *strings.Builder, totals []report.CategoryTotal) {
	for _, ct := range totals {
		fmt.Fprintf(b, "%s: %s%s\n", ct.Category, r.symbol, ct.Total.StringFixed(2))
	}
}
