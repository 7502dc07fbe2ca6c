package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/track2success-dev/track2success/internal/aggregate"
	"github.com/track2success-dev/track2success/internal/model"
)

// CategoryTotal is one category's summed amount within a report section.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Document is one week's report: the expense and income category
// breakdowns for the seven days starting at WeekStart. Sections are sorted
// by category name. Rendering to text or files is the caller's concern.
type Document struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Expenses  []CategoryTotal
	Incomes   []CategoryTotal
}

// Summary is the whole-store totals document. Values are rounded to two
// decimal places for display; stored amounts keep full precision.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Generator builds report documents from aggregation queries.
type Generator struct {
	engine *aggregate.Engine
}

// NewGenerator creates a Generator over the given engine.
func NewGenerator(engine *aggregate.Engine) *Generator {
	return &Generator{engine: engine}
}

// Weekly builds the report for the week anchored at weekStart. A week with
// no transactions of one kind gets an empty section for it.
func (g *Generator) Weekly(weekStart time.Time) Document {
	start := aggregate.WeekStart(weekStart)
	return Document{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 6),
		Expenses:  categoryTotals(g.engine.WeeklyGroups(model.KindExpense)[start]),
		Incomes:   categoryTotals(g.engine.WeeklyGroups(model.KindIncome)[start]),
	}
}

// AllWeekly builds one document per distinct week present in either the
// expense or the income set, ordered by week start.
func (g *Generator) AllWeekly() []Document {
	weeks := make(map[time.Time]bool)
	for start := range g.engine.WeeklyGroups(model.KindExpense) {
		weeks[start] = true
	}
	for start := range g.engine.WeeklyGroups(model.KindIncome) {
		weeks[start] = true
	}

	starts := make([]time.Time, 0, len(weeks))
	for start := range weeks {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	docs := make([]Document, 0, len(starts))
	for _, start := range starts {
		docs = append(docs, g.Weekly(start))
	}
	return docs
}

// Summarize totals income, expense, and net savings across the entire
// store.
func (g *Generator) Summarize() Summary {
	income := sum(g.engine.CategoryTotals(model.KindIncome))
	expense := sum(g.engine.CategoryTotals(model.KindExpense))
	return Summary{
		Income:  income.Round(2),
		Expense: expense.Round(2),
		Net:     income.Sub(expense).Round(2),
	}
}

func categoryTotals(txns []model.Transaction) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

func sum(totals map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range totals {
		total = total.Add(v)
	}
	return total
}
