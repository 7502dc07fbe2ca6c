package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSigned(t *testing.T) {
	amount := decimal.RequireFromString("50.00")

	exp := Transaction{Kind: KindExpense, Amount: amount}
	assert.True(t, exp.Signed().Equal(amount.Neg()))

	inc := Transaction{Kind: KindIncome, Amount: amount}
	assert.True(t, inc.Signed().Equal(amount))
}

func TestDay_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 3, 4, 18, 30, 12, 99, loc)

	got := Day(in)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, Day(got), "already-normalized dates are unchanged")
}
