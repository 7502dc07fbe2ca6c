package importer

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/track2success-dev/track2success/internal/ledger"
	"github.com/track2success-dev/track2success/internal/model"
)

// Row is a parsed bank statement line. Amount keeps the bank's sign:
// negative means money out, positive means money in.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// AddParams converts the row into store input under the given category.
// The sign picks the kind; the stored amount is always non-negative.
func (r Row) AddParams(category string) ledger.AddParams {
	kind := model.KindIncome
	amount := r.Amount
	if amount.IsNegative() {
		kind = model.KindExpense
		amount = amount.Neg()
	}
	return ledger.AddParams{
		Kind:     kind,
		Amount:   amount,
		Date:     r.Date,
		Category: category,
		Label:    r.Description,
	}
}

// Parser converts a bank CSV export into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}
