package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// GenericParser parses three-column "date,description,amount" CSV exports,
// the lowest common denominator most banks can produce.
type GenericParser struct{}

const (
	genericNumFields = 3
	genericColDate   = 0
	genericColDesc   = 1
	genericColAmount = 2
)

// Date formats seen across bank exports; tried in order.
var genericDateFormats = []string{"2006-01-02", "01/02/2006"}

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns Rows. The first line is assumed to
// be a header.
func (p *GenericParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (Row, error) {
	date, err := parseGenericDate(rec[genericColDate])
	if err != nil {
		return Row{}, err
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	return Row{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
	}, nil
}

func parseGenericDate(s string) (time.Time, error) {
	for _, format := range genericDateFormats {
		if date, err := time.Parse(format, s); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}
