package service

import (
	"strings"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/pkg/apperror"
)

// ReceiptCanonicalizer implements ports.Canonicalizer.
type ReceiptCanonicalizer struct{}

// NewReceiptCanonicalizer creates a new canonicalizer.
func NewReceiptCanonicalizer() *ReceiptCanonicalizer {
	return &ReceiptCanonicalizer{}
}

// Canonicalize reduces a receipt to the six hashed fields.
// Absent amounts become "0.00"; an amount that is present but not numeric is a
// normalization error.
func (c *ReceiptCanonicalizer) Canonicalize(record *domain.ReceiptRecord) (*domain.CanonicalRecord, error) {
	if record == nil {
		return nil, apperror.Validation("receipt is required")
	}

	subtotal, err := canonicalAmount("subtotal", record.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := canonicalAmount("tax", record.Tax)
	if err != nil {
		return nil, err
	}
	total, err := canonicalAmount("total", record.Total)
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(record.Date)
	if date == "" {
		date = domain.NullDate
	}
	currency := strings.ToUpper(strings.TrimSpace(record.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return &domain.CanonicalRecord{
		Merchant: strings.ToLower(strings.TrimSpace(record.Merchant)),
		Date:     date,
		Currency: currency,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}, nil
}

func canonicalAmount(field string, a domain.Amount) (string, error) {
	if !a.Present() {
		return "0.00", nil
	}
	d, err := a.Decimal()
	if err != nil {
		return "", apperror.ErrNormalization(field, err)
	}
	return d.StringFixed(2), nil
}
