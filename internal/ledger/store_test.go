package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/track2success-dev/track2success/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(amount, date string, category string) AddParams {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return AddParams{Kind: model.KindExpense, Amount: dec(amount), Date: d, Category: category}
}

func income(amount, date string, category string) AddParams {
	p := expense(amount, date, category)
	p.Kind = model.KindIncome
	return p
}

func TestAdd_MintsSequentialIDs(t *testing.T) {
	st := NewStore()

	id1, err := st.Add(expense("50.00", "2024-03-04", "Groceries"))
	require.NoError(t, err)
	id2, err := st.Add(income("1000.00", "2024-03-01", "Salary"))
	require.NoError(t, err)

	assert.Equal(t, model.ID(1), id1)
	assert.Equal(t, model.ID(2), id2)

	txn, err := st.Get(id2)
	require.NoError(t, err)
	assert.Equal(t, model.KindIncome, txn.Kind)
	assert.Equal(t, "Salary", txn.Category)
	assert.True(t, txn.Amount.Equal(dec("1000.00")))
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params AddParams
		field  string
	}{
		{"negative amount", expense("-5.00", "2024-03-04", "Groceries"), "amount"},
		{"too many decimal places", expense("1.005", "2024-03-04", "Groceries"), "amount"},
		{"empty category", expense("5.00", "2024-03-04", ""), "category"},
		{"zero date", AddParams{Kind: model.KindExpense, Amount: dec("5.00"), Category: "Groceries"}, "date"},
		{"unknown kind", AddParams{Kind: "transfer", Amount: dec("5.00"), Date: date(2024, 3, 4), Category: "Misc"}, "kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStore()
			_, err := st.Add(tt.params)
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, st.Len(), "failed add must not change the store")
		})
	}
}

func TestAdd_ZeroAmountAllowed(t *testing.T) {
	st := NewStore()
	_, err := st.Add(expense("0.00", "2024-03-04", "Groceries"))
	require.NoError(t, err)
}

func TestRemove_ReturnsTransaction(t *testing.T) {
	st := NewStore()
	id, err := st.Add(expense("50.00", "2024-03-04", "Groceries"))
	require.NoError(t, err)

	txn, err := st.Remove(id)
	require.NoError(t, err)
	assert.Equal(t, id, txn.ID)
	assert.Zero(t, st.Len())

	_, err = st.Get(id)
	var nferr NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, id, nferr.ID)
}

func TestRemove_UnknownID(t *testing.T) {
	st := NewStore()
	_, err := st.Remove(42)
	var nferr NotFoundError
	require.ErrorAs(t, err, &nferr)

	// Idempotent failure: a second attempt fails the same way.
	_, err2 := st.Remove(42)
	assert.True(t, errors.As(err2, &nferr))
}

func TestRemove_DisambiguatesIdenticalTransactions(t *testing.T) {
	st := NewStore()
	id1, err := st.Add(expense("20.00", "2024-03-01", "Entertainment"))
	require.NoError(t, err)
	id2, err := st.Add(expense("20.00", "2024-03-01", "Entertainment"))
	require.NoError(t, err)

	_, err = st.Remove(id1)
	require.NoError(t, err)

	// The twin with the other id is untouched.
	txn, err := st.Get(id2)
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(dec("20.00")))
	require.Len(t, st.Expenses(), 1)
}

func TestSnapshots_AreInsertionOrderedCopies(t *testing.T) {
	st := NewStore()
	_, err := st.Add(expense("2.00", "2024-03-04", "B"))
	require.NoError(t, err)
	_, err = st.Add(expense("1.00", "2024-03-01", "A"))
	require.NoError(t, err)

	exps := st.Expenses()
	require.Len(t, exps, 2)
	assert.Equal(t, "B", exps[0].Category)
	assert.Equal(t, "A", exps[1].Category)

	// Mutating the snapshot must not leak into the store.
	exps[0].Category = "mutated"
	fresh := st.Expenses()
	assert.Equal(t, "B", fresh[0].Category)
}

func TestFind_ByPredicate(t *testing.T) {
	st := NewStore()
	_, err := st.Add(expense("50.00", "2024-03-04", "Groceries"))
	require.NoError(t, err)
	id2, err := st.Add(expense("20.00", "2024-03-01", "Entertainment"))
	require.NoError(t, err)
	id3, err := st.Add(income("20.00", "2024-03-01", "Refund"))
	require.NoError(t, err)

	ids := st.Find(func(txn model.Transaction) bool {
		return txn.Amount.Equal(dec("20.00"))
	})
	assert.Equal(t, []model.ID{id2, id3}, ids)

	assert.Empty(t, st.Find(func(model.Transaction) bool { return false }))
}

func TestRestore_KeepsIDsAndAdvancesCounter(t *testing.T) {
	st := NewStore()
	err := st.Restore([]model.Transaction{
		{ID: 3, Kind: model.KindExpense, Amount: dec("50.00"), Date: date(2024, 3, 4), Category: "Groceries"},
		{ID: 7, Kind: model.KindIncome, Amount: dec("1000.00"), Date: date(2024, 3, 1), Category: "Salary"},
	})
	require.NoError(t, err)

	_, err = st.Get(3)
	require.NoError(t, err)

	id, err := st.Add(expense("1.00", "2024-03-05", "Misc"))
	require.NoError(t, err)
	assert.Equal(t, model.ID(8), id, "counter must move past restored ids")
}

func TestRestore_RejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name  string
		txn   model.Transaction
		field string
	}{
		{"negative amount", model.Transaction{ID: 1, Kind: model.KindExpense, Amount: dec("-50.00"), Date: date(2024, 3, 4), Category: "Groceries"}, "amount"},
		{"too many decimal places", model.Transaction{ID: 1, Kind: model.KindExpense, Amount: dec("1.005"), Date: date(2024, 3, 4), Category: "Groceries"}, "amount"},
		{"empty category", model.Transaction{ID: 1, Kind: model.KindExpense, Amount: dec("5.00"), Date: date(2024, 3, 4)}, "category"},
		{"zero date", model.Transaction{ID: 1, Kind: model.KindExpense, Amount: dec("5.00"), Category: "Groceries"}, "date"},
		{"unknown kind", model.Transaction{ID: 1, Kind: "transfer", Amount: dec("5.00"), Date: date(2024, 3, 4), Category: "Misc"}, "kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStore()
			obs := &recordingObserver{}
			st.Watch(obs)

			err := st.Restore([]model.Transaction{
				{ID: 2, Kind: model.KindIncome, Amount: dec("10.00"), Date: date(2024, 3, 1), Category: "Salary"},
				tt.txn,
			})
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			// All-or-nothing: the valid sibling row must not land either.
			assert.Zero(t, st.Len())
			assert.Empty(t, obs.added)
		})
	}
}

func TestRestore_RejectsDuplicateIDs(t *testing.T) {
	st := NewStore()
	err := st.Restore([]model.Transaction{
		{ID: 1, Kind: model.KindExpense, Amount: dec("1.00"), Date: date(2024, 3, 4), Category: "A"},
		{ID: 1, Kind: model.KindIncome, Amount: dec("2.00"), Date: date(2024, 3, 5), Category: "B"},
	})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, st.Len())
}

func TestWatch_ObserversSeeMutations(t *testing.T) {
	st := NewStore()
	obs := &recordingObserver{}
	st.Watch(obs)

	id, err := st.Add(expense("50.00", "2024-03-04", "Groceries"))
	require.NoError(t, err)
	_, err = st.Remove(id)
	require.NoError(t, err)

	require.Len(t, obs.added, 1)
	require.Len(t, obs.removed, 1)
	assert.Equal(t, obs.added[0], obs.removed[0], "removal must carry the same transaction")
}

type recordingObserver struct {
	added   []model.Transaction
	removed []model.Transaction
}

func (o *recordingObserver) TransactionAdded(txn model.Transaction)   { o.added = append(o.added, txn) }
func (o *recordingObserver) TransactionRemoved(txn model.Transaction) { o.removed = append(o.removed, txn) }
