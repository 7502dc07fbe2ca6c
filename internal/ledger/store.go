package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/track2success-dev/track2success/internal/model"
)

// Observer is notified after every successful mutation of the store.
// Notifications carry the stored transaction, id included.
type Observer interface {
	TransactionAdded(model.Transaction)
	TransactionRemoved(model.Transaction)
}

// Store owns the authoritative transaction collections for one session.
// It mints ids, keeps insertion order per kind, and notifies observers so
// derived state can be maintained incrementally. Not safe for concurrent
// use; callers needing that must serialize access themselves.
type Store struct {
	nextID    model.ID
	expenses  map[model.ID]model.Transaction
	incomes   map[model.ID]model.Transaction
	expOrder  []model.ID
	incOrder  []model.ID
	observers []Observer
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nextID:   1,
		expenses: make(map[model.ID]model.Transaction),
		incomes:  make(map[model.ID]model.Transaction),
	}
}

// Watch registers an observer for subsequent mutations.
func (s *Store) Watch(obs Observer) {
	s.observers = append(s.observers, obs)
}

// AddParams holds the caller-supplied fields of a new transaction.
type AddParams struct {
	Kind     model.Kind
	Amount   decimal.Decimal
	Date     time.Time
	Category string
	Label    string
}

func validate(p AddParams) error {
	if p.Kind != model.KindExpense && p.Kind != model.KindIncome {
		return ValidationError{Field: "kind", Description: fmt.Sprintf("unknown kind %q", p.Kind)}
	}
	if p.Amount.IsNegative() {
		return ValidationError{Field: "amount", Description: fmt.Sprintf("amount %s is negative", p.Amount)}
	}
	hundred := decimal.NewFromInt(100)
	if !p.Amount.Mul(hundred).Equal(p.Amount.Mul(hundred).Floor()) {
		return ValidationError{Field: "amount", Description: fmt.Sprintf("amount %s has more than 2 decimal places", p.Amount)}
	}
	if p.Date.IsZero() {
		return ValidationError{Field: "date", Description: "date is required"}
	}
	if p.Category == "" {
		return ValidationError{Field: "category", Description: "category is required"}
	}
	return nil
}

// Add validates the input, mints the next id, and stores the transaction.
// All-or-nothing: on error the store is unchanged.
func (s *Store) Add(p AddParams) (model.ID, error) {
	if err := validate(p); err != nil {
		return 0, err
	}

	txn := model.Transaction{
		ID:       s.nextID,
		Kind:     p.Kind,
		Amount:   p.Amount,
		Date:     model.Day(p.Date),
		Category: p.Category,
		Label:    p.Label,
	}
	s.nextID++
	s.insert(txn)

	for _, obs := range s.observers {
		obs.TransactionAdded(txn)
	}
	return txn.ID, nil
}

// Remove deletes and returns the transaction with the given id.
func (s *Store) Remove(id model.ID) (model.Transaction, error) {
	if txn, ok := s.expenses[id]; ok {
		delete(s.expenses, id)
		s.expOrder = dropID(s.expOrder, id)
		s.notifyRemoved(txn)
		return txn, nil
	}
	if txn, ok := s.incomes[id]; ok {
		delete(s.incomes, id)
		s.incOrder = dropID(s.incOrder, id)
		s.notifyRemoved(txn)
		return txn, nil
	}
	return model.Transaction{}, NotFoundError{ID: id}
}

// Get returns the transaction with the given id.
func (s *Store) Get(id model.ID) (model.Transaction, error) {
	if txn, ok := s.expenses[id]; ok {
		return txn, nil
	}
	if txn, ok := s.incomes[id]; ok {
		return txn, nil
	}
	return model.Transaction{}, NotFoundError{ID: id}
}

// Expenses returns all stored expenses in insertion order. The slice is a
// snapshot; mutating it does not affect the store.
func (s *Store) Expenses() []model.Transaction {
	return collect(s.expOrder, s.expenses)
}

// Incomes returns all stored incomes in insertion order, as a snapshot.
func (s *Store) Incomes() []model.Transaction {
	return collect(s.incOrder, s.incomes)
}

// Find returns the ids of every stored transaction matching the predicate,
// expenses first, each group in insertion order. This is the supported way
// to locate transactions by content.
func (s *Store) Find(match func(model.Transaction) bool) []model.ID {
	var ids []model.ID
	for _, txn := range s.Expenses() {
		if match(txn) {
			ids = append(ids, txn.ID)
		}
	}
	for _, txn := range s.Incomes() {
		if match(txn) {
			ids = append(ids, txn.ID)
		}
	}
	return ids
}

// Len returns the number of stored transactions of both kinds.
func (s *Store) Len() int {
	return len(s.expenses) + len(s.incomes)
}

// Restore bulk-inserts previously saved transactions, keeping their ids,
// and advances the id counter past the highest id seen. Observers are
// notified per transaction. Rows face the same field validation as Add, so
// a hand-edited ledger file cannot smuggle in values Add would reject.
// Fails without side effects on any invalid or duplicate row.
func (s *Store) Restore(txns []model.Transaction) error {
	seen := make(map[model.ID]bool, len(txns))
	for _, txn := range txns {
		if err := validate(AddParams{
			Kind:     txn.Kind,
			Amount:   txn.Amount,
			Date:     txn.Date,
			Category: txn.Category,
			Label:    txn.Label,
		}); err != nil {
			return err
		}
		if seen[txn.ID] || s.has(txn.ID) {
			return ValidationError{Field: "id", Description: fmt.Sprintf("duplicate id %d", txn.ID)}
		}
		seen[txn.ID] = true
	}

	for _, txn := range txns {
		txn.Date = model.Day(txn.Date)
		s.insert(txn)
		if txn.ID >= s.nextID {
			s.nextID = txn.ID + 1
		}
		for _, obs := range s.observers {
			obs.TransactionAdded(txn)
		}
	}
	return nil
}

// All returns every stored transaction, expenses then incomes, each group
// in insertion order.
func (s *Store) All() []model.Transaction {
	return append(s.Expenses(), s.Incomes()...)
}

func (s *Store) insert(txn model.Transaction) {
	if txn.Kind == model.KindExpense {
		s.expenses[txn.ID] = txn
		s.expOrder = append(s.expOrder, txn.ID)
		return
	}
	s.incomes[txn.ID] = txn
	s.incOrder = append(s.incOrder, txn.ID)
}

func (s *Store) has(id model.ID) bool {
	_, inExp := s.expenses[id]
	_, inInc := s.incomes[id]
	return inExp || inInc
}

func (s *Store) notifyRemoved(txn model.Transaction) {
	for _, obs := range s.observers {
		obs.TransactionRemoved(txn)
	}
}

func collect(order []model.ID, txns map[model.ID]model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(order))
	for _, id := range order {
		out = append(out, txns[id])
	}
	return out
}

func dropID(ids []model.ID, id model.ID) []model.ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
