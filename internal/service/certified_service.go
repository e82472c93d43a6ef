package service

import (
	"context"
	"fmt"
	"strings"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports"
	"receipt-certifier/pkg/apperror"

	"github.com/rs/zerolog"
)

// CertifiedRegistry is the read-only set of certified reference receipts.
type CertifiedRegistry struct {
	receipts map[string]domain.ReceiptRecord
}

// NewCertifiedRegistry copies receipts into a new registry.
func NewCertifiedRegistry(receipts map[string]domain.ReceiptRecord) *CertifiedRegistry {
	copied := make(map[string]domain.ReceiptRecord, len(receipts))
	for id, r := range receipts {
		copied[id] = r
	}
	return &CertifiedRegistry{receipts: copied}
}

// LoadCertifiedRegistry builds a registry from source.
func LoadCertifiedRegistry(ctx context.Context, source ports.CertifiedReceiptSource) (*CertifiedRegistry, error) {
	receipts, err := source.LoadCertified(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading certified receipts: %w", err)
	}
	return NewCertifiedRegistry(receipts), nil
}

// Lookup returns the certified receipt for id.
func (r *CertifiedRegistry) Lookup(id string) (domain.ReceiptRecord, bool) {
	rec, ok := r.receipts[id]
	return rec, ok
}

// Len returns the number of certified receipts.
func (r *CertifiedRegistry) Len() int {
	return len(r.receipts)
}

// CertifiedComparatorService implements ports.CertifiedComparator.
type CertifiedComparatorService struct {
	registry *CertifiedRegistry
	log      zerolog.Logger
}

// NewCertifiedComparatorService creates a new CertifiedComparatorService.
func NewCertifiedComparatorService(registry *CertifiedRegistry, log zerolog.Logger) *CertifiedComparatorService {
	return &CertifiedComparatorService{registry: registry, log: log}
}

type comparedField struct {
	name  string
	equal func(user, cert *domain.ReceiptRecord) bool
	value func(r *domain.ReceiptRecord) string
}

var comparedFields = []comparedField{
	textField("merchant", func(r *domain.ReceiptRecord) string { return r.Merchant }),
	textField("date", func(r *domain.ReceiptRecord) string { return r.Date }),
	textField("time", func(r *domain.ReceiptRecord) string { return r.Time }),
	textField("currency", func(r *domain.ReceiptRecord) string { return r.Currency }),
	amountField("subtotal", func(r *domain.ReceiptRecord) domain.Amount { return r.Subtotal }),
	amountField("tax", func(r *domain.ReceiptRecord) domain.Amount { return r.Tax }),
	amountField("total", func(r *domain.ReceiptRecord) domain.Amount { return r.Total }),
}

func textField(name string, get func(*domain.ReceiptRecord) string) comparedField {
	return comparedField{
		name:  name,
		equal: func(u, c *domain.ReceiptRecord) bool { return get(u) == get(c) },
		value: func(r *domain.ReceiptRecord) string {
			if v := get(r); v != "" {
				return v
			}
			return "null"
		},
	}
}

func amountField(name string, get func(*domain.ReceiptRecord) domain.Amount) comparedField {
	return comparedField{
		name:  name,
		equal: func(u, c *domain.ReceiptRecord) bool { return amountsEqual(get(u), get(c)) },
		value: func(r *domain.ReceiptRecord) string { return get(r).String() },
	}
}

// amountsEqual compares by decimal value, so 3.6 and 3.60 are equal.
// Amounts that do not parse are compared as text.
func amountsEqual(a, b domain.Amount) bool {
	if !a.Present() || !b.Present() {
		return a.Present() == b.Present()
	}
	da, errA := a.Decimal()
	db, errB := b.Decimal()
	if errA != nil || errB != nil {
		return strings.TrimSpace(a.Raw()) == strings.TrimSpace(b.Raw())
	}
	return da.Equal(db)
}

// Compare diffs record against the certified receipt registered under
// referenceID. Text fields are compared exactly, without case folding.
func (s *CertifiedComparatorService) Compare(record *domain.ReceiptRecord, referenceID string) (*domain.Comparison, error) {
	if record == nil {
		return nil, apperror.Validation("receipt is required")
	}

	certified, ok := s.registry.Lookup(referenceID)
	if !ok {
		s.log.Info().Str("receipt_id", referenceID).Msg("certified receipt not found")
		return &domain.Comparison{
			ReferenceID: referenceID,
			Status:      domain.ComparisonNotFound,
			Differences: []string{domain.ReferenceNotFoundMessage},
		}, apperror.ErrNotFound("Certified receipt")
	}

	var diffs []string
	for _, f := range comparedFields {
		if f.equal(record, &certified) {
			continue
		}
		diffs = append(diffs, fmt.Sprintf("%s: user has '%s', certified has '%s'", f.name, f.value(record), f.value(&certified)))
	}

	result := &domain.Comparison{ReferenceID: referenceID}
	if len(diffs) == 0 {
		result.Status = domain.ComparisonMatch
		result.Differences = []string{domain.AllFieldsMatchMessage}
	} else {
		result.Status = domain.ComparisonMismatch
		result.Differences = diffs
	}

	s.log.Info().
		Str("receipt_id", referenceID).
		Str("status", string(result.Status)).
		Int("differences", len(diffs)).
		Msg("certified comparison")

	return result, nil
}
