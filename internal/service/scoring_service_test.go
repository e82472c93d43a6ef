package service

import (
	"testing"
	"time"

	"receipt-certifier/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceDay = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func walmartReceipt() *domain.ReceiptRecord {
	return &domain.ReceiptRecord{
		Merchant: "Walmart",
		Date:     "2026-02-07",
		Time:     "14:30:22",
		Currency: "USD",
		Subtotal: domain.AmountOf("45.99"),
		Tax:      domain.AmountOf("3.68"),
		Total:    domain.AmountOf("49.67"),
	}
}

func item(name string, qty int, price string) domain.LineItem {
	return domain.LineItem{Item: name, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestRuleBasedScorer_CleanReceipt(t *testing.T) {
	s := NewRuleBasedScorer(false)

	a := s.Score(walmartReceipt(), referenceDay)

	assert.Equal(t, 0, a.Score)
	assert.Equal(t, domain.VerdictLikelyLegit, a.Verdict)
	assert.True(t, a.ArithmeticValid)
	assert.True(t, a.LineItemsValid, "no line items is a vacuous pass")
	assert.Equal(t, []string{"arithmetic checks passed"}, a.Reasons)
	assert.Empty(t, a.Anomalies)
	assert.NotNil(t, a.Anomalies)
	assert.Equal(t, domain.AssessmentSourceRules, a.Source)
}

func TestRuleBasedScorer_ArithmeticMismatch(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Total = domain.AmountOf("99.99")

	a := s.Score(r, referenceDay)

	assert.False(t, a.ArithmeticValid)
	assert.Equal(t, 50, a.Score)
	assert.Equal(t, domain.VerdictSuspicious, a.Verdict)
	require.Len(t, a.Reasons, 1)
	assert.Contains(t, a.Reasons[0], "mismatch")
	assert.Contains(t, a.Reasons[0], "99.99")
	assert.Contains(t, a.Reasons[0], "49.67")
}

func TestRuleBasedScorer_ArithmeticTolerance(t *testing.T) {
	s := NewRuleBasedScorer(false)

	tests := []struct {
		total string
		valid bool
	}{
		{"11.00", true},
		{"11.02", true},
		{"10.98", true},
		{"11.03", false},
		{"10.97", false},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			r := walmartReceipt()
			r.Subtotal = domain.AmountOf("10.00")
			r.Tax = domain.AmountOf("1.00")
			r.Total = domain.AmountOf(tt.total)

			assert.Equal(t, tt.valid, s.Score(r, referenceDay).ArithmeticValid)
		})
	}
}

func TestRuleBasedScorer_NonNumericAmount(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Tax = domain.AmountOf("n/a")

	a := s.Score(r, referenceDay)

	assert.False(t, a.ArithmeticValid)
	assert.Equal(t, 50, a.Score)
	assert.Contains(t, a.Reasons[0], "tax is not a numeric amount")
}

func TestRuleBasedScorer_AmountOutOfRange(t *testing.T) {
	s := NewRuleBasedScorer(false)

	for _, raw := range []string{"1e999999999", "1e-999999999"} {
		t.Run(raw, func(t *testing.T) {
			r := walmartReceipt()
			r.Subtotal = domain.AmountOf(raw)

			a := s.Score(r, referenceDay)

			assert.False(t, a.ArithmeticValid)
			assert.Equal(t, 50, a.Score)
			assert.Contains(t, a.Reasons[0], "subtotal is not a numeric amount")
		})
	}
}

func TestRuleBasedScorer_InvalidDate(t *testing.T) {
	s := NewRuleBasedScorer(false)

	for _, date := range []string{"07/02/2026", "2026-13-01", "yesterday", "2026-2-7"} {
		t.Run(date, func(t *testing.T) {
			r := walmartReceipt()
			r.Date = date

			a := s.Score(r, referenceDay)
			assert.Equal(t, 20, a.Score)
			require.Len(t, a.Anomalies, 1)
			assert.Contains(t, a.Anomalies[0], "invalid date format")
			assert.Equal(t, "Invalid date format", a.Reasons[0])
		})
	}
}

func TestRuleBasedScorer_FutureDate(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Date = "2026-10-19"

	a := s.Score(r, referenceDay)

	assert.Equal(t, 40, a.Score)
	assert.Equal(t, domain.VerdictSuspicious, a.Verdict)
	require.Len(t, a.Anomalies, 1)
	assert.Contains(t, a.Anomalies[0], "future date")
	assert.Contains(t, a.Reasons[0], "2026-10-19")
}

func TestRuleBasedScorer_SameDayIsNotFuture(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Date = "2026-10-18"

	a := s.Score(r, referenceDay)
	assert.Equal(t, 0, a.Score)
}

func TestRuleBasedScorer_ReferenceDateTimeZoneUsesCalendarDay(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Date = "2026-10-18"

	loc := time.FixedZone("UTC-10", -10*60*60)
	ref := time.Date(2026, 10, 18, 23, 0, 0, 0, loc)

	assert.Equal(t, 0, s.Score(r, ref).Score)
}

func TestRuleBasedScorer_LineItems(t *testing.T) {
	s := NewRuleBasedScorer(false)

	t.Run("consistent", func(t *testing.T) {
		r := walmartReceipt()
		r.LineItems = []domain.LineItem{item("Milk 2%", 2, "9.99"), item("Coffee", 1, "26.01")}

		a := s.Score(r, referenceDay)
		assert.True(t, a.LineItemsValid)
		assert.Equal(t, 0, a.Score)
	})

	t.Run("within tolerance", func(t *testing.T) {
		r := walmartReceipt()
		r.LineItems = []domain.LineItem{item("Milk 2%", 2, "9.99"), item("Coffee", 1, "26.03")}

		assert.True(t, s.Score(r, referenceDay).LineItemsValid)
	})

	t.Run("inconsistent", func(t *testing.T) {
		r := walmartReceipt()
		r.LineItems = []domain.LineItem{item("Milk 2%", 2, "4.99"), item("Bread", 1, "3.49"), item("Eggs Dozen", 3, "11.97")}

		a := s.Score(r, referenceDay)
		assert.False(t, a.LineItemsValid)
		assert.Equal(t, 30, a.Score)
		assert.Equal(t, domain.VerdictLikelyLegit, a.Verdict)
		require.Len(t, a.Reasons, 2)
		assert.Equal(t, "line items sum to 49.38 but subtotal is 45.99", a.Reasons[1])
	})
}

func TestRuleBasedScorer_MissingFields(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := &domain.ReceiptRecord{Merchant: "CVS", Date: "2026-02-07", Total: domain.AmountOf("25")}

	a := s.Score(r, referenceDay)

	// subtotal + tax (absent, 0) != total 25 => +50, missing fields => +20
	assert.Equal(t, 70, a.Score)
	assert.Equal(t, domain.VerdictSuspicious, a.Verdict)
	assert.Contains(t, a.Anomalies, "missing fields: currency, subtotal, tax")
}

func TestRuleBasedScorer_MissingFieldsPenaltyAppliedOnce(t *testing.T) {
	s := NewRuleBasedScorer(false)

	a := s.Score(&domain.ReceiptRecord{}, referenceDay)

	// invalid date (+20), arithmetic 0+0=0 passes, missing fields (+20)
	assert.Equal(t, 40, a.Score)
	require.Len(t, a.Anomalies, 2)
	assert.Equal(t, "missing fields: merchant, date, currency, subtotal, tax, total", a.Anomalies[1])
}

func TestRuleBasedScorer_EveryRuleFires(t *testing.T) {
	r := &domain.ReceiptRecord{
		Date:      "2027-01-01",
		Currency:  "USD",
		Subtotal:  domain.AmountOf("45.99"),
		Tax:       domain.AmountOf("3.68"),
		Total:     domain.AmountOf("99.99"),
		LineItems: []domain.LineItem{item("Widget", 1, "1.00")},
	}

	unclamped := NewRuleBasedScorer(false).Score(r, referenceDay)
	assert.Equal(t, 140, unclamped.Score)
	assert.Equal(t, domain.VerdictHighlySuspicious, unclamped.Verdict)

	clamped := NewRuleBasedScorer(true).Score(r, referenceDay)
	assert.Equal(t, 100, clamped.Score)
	assert.Equal(t, domain.VerdictHighlySuspicious, clamped.Verdict)
	assert.Equal(t, unclamped.Reasons, clamped.Reasons)
}

func TestRuleBasedScorer_ReasonOrderFollowsRuleOrder(t *testing.T) {
	r := walmartReceipt()
	r.Date = "bad"
	r.Total = domain.AmountOf("1")
	r.LineItems = []domain.LineItem{item("Widget", 1, "1.00")}

	a := NewRuleBasedScorer(false).Score(r, referenceDay)

	require.Len(t, a.Reasons, 3)
	assert.Equal(t, "Invalid date format", a.Reasons[0])
	assert.Contains(t, a.Reasons[1], "arithmetic mismatch")
	assert.Contains(t, a.Reasons[2], "line items sum to")
}

func TestRuleBasedScorer_Deterministic(t *testing.T) {
	s := NewRuleBasedScorer(false)
	r := walmartReceipt()
	r.Total = domain.AmountOf("99.99")
	r.LineItems = []domain.LineItem{item("Widget", 3, "2.50")}

	first := s.Score(r, referenceDay)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(r, referenceDay))
	}
}
