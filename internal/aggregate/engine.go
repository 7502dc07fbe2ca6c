package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/track2success-dev/track2success/internal/model"
)

// Source supplies the live transaction set the engine derives views from.
// *ledger.Store satisfies it.
type Source interface {
	Expenses() []model.Transaction
	Incomes() []model.Transaction
}

// dayState tracks the running signed total for one date plus how many live
// transactions touch it, so the entry can be dropped exactly when the last
// one is removed even if the total nets to zero earlier.
type dayState struct {
	net   decimal.Decimal
	count int
}

// Engine derives daily, weekly, and per-category aggregates from a Source.
// The net-savings-by-day index is maintained incrementally via the
// ledger.Observer callbacks; every grouped view is recomputed on demand so
// it always reflects the current store contents. One engine is owned by one
// session and shares the store's lifetime.
type Engine struct {
	source   Source
	dailyNet map[time.Time]dayState
}

// NewEngine creates an Engine over the given source. The index starts
// empty; register the engine with the store before adding transactions, or
// call Recompute.
func NewEngine(src Source) *Engine {
	return &Engine{
		source:   src,
		dailyNet: make(map[time.Time]dayState),
	}
}

// TransactionAdded applies a stored transaction to the daily net index:
// income raises the date's total, expense lowers it.
func (e *Engine) TransactionAdded(txn model.Transaction) {
	e.apply(txn.Date, txn.Signed(), 1)
}

// TransactionRemoved reverses TransactionAdded for the same transaction.
func (e *Engine) TransactionRemoved(txn model.Transaction) {
	e.apply(txn.Date, txn.Signed().Neg(), -1)
}

func (e *Engine) apply(date time.Time, delta decimal.Decimal, count int) {
	day := model.Day(date)
	st := e.dailyNet[day]
	st.net = st.net.Add(delta)
	st.count += count
	if st.count <= 0 {
		delete(e.dailyNet, day)
		return
	}
	e.dailyNet[day] = st
}

// DailyNet is one date's running signed total of income minus expense.
type DailyNet struct {
	Date time.Time
	Net  decimal.Decimal
}

// NetSavings returns the daily net index as a snapshot ordered by date.
func (e *Engine) NetSavings() []DailyNet {
	out := make([]DailyNet, 0, len(e.dailyNet))
	for day, st := range e.dailyNet {
		out = append(out, DailyNet{Date: day, Net: st.net})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Recompute rebuilds the daily net index from scratch over the source.
// The incremental path keeps the index current; this exists as a
// consistency fallback.
func (e *Engine) Recompute() {
	e.dailyNet = make(map[time.Time]dayState)
	for _, txn := range e.source.Expenses() {
		e.TransactionAdded(txn)
	}
	for _, txn := range e.source.Incomes() {
		e.TransactionAdded(txn)
	}
}

// DailyTotals sums amounts of the given kind grouped by date. Computed
// fresh on every call.
func (e *Engine) DailyTotals(kind model.Kind) map[time.Time]decimal.Decimal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, txn := range e.kindTransactions(kind) {
		totals[txn.Date] = totals[txn.Date].Add(txn.Amount)
	}
	return totals
}

// CategoryTotals sums amounts of the given kind grouped by category.
// Computed fresh on every call.
func (e *Engine) CategoryTotals(kind model.Kind) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range e.kindTransactions(kind) {
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// WeeklyGroups buckets transactions of the given kind by the Sunday
// starting their week. Within a bucket, insertion order is preserved.
func (e *Engine) WeeklyGroups(kind model.Kind) map[time.Time][]model.Transaction {
	groups := make(map[time.Time][]model.Transaction)
	for _, txn := range e.kindTransactions(kind) {
		start := WeekStart(txn.Date)
		groups[start] = append(groups[start], txn)
	}
	return groups
}

// WeekStart returns the Sunday on or before the given date. All seven days
// from that Sunday through the following Saturday share one bucket. The
// anchor is deliberately Sunday, not ISO Monday: existing reports were
// grouped this way and regrouping them would silently change history.
func WeekStart(date time.Time) time.Time {
	day := model.Day(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func (e *Engine) kindTransactions(kind model.Kind) []model.Transaction {
	if kind == model.KindExpense {
		return e.source.Expenses()
	}
	return e.source.Incomes()
}
