package analysis

import (
	"context"
	"time"

	"receipt-certifier/internal/core/domain"

	"github.com/rs/zerolog"
)

type suppliedKey struct{}

// WithSupplied attaches raw analyzer output to ctx for SuppliedAnalyzer.
func WithSupplied(ctx context.Context, raw []byte) context.Context {
	return context.WithValue(ctx, suppliedKey{}, raw)
}

// SuppliedAnalyzer implements ports.ReceiptAnalyzer over analyses that the
// caller obtained from the external model and submitted with the receipt.
// Without a supplied analysis it reports none, and the rule-based scorer runs.
type SuppliedAnalyzer struct {
	log zerolog.Logger
}

// NewSuppliedAnalyzer creates a new SuppliedAnalyzer.
func NewSuppliedAnalyzer(log zerolog.Logger) *SuppliedAnalyzer {
	return &SuppliedAnalyzer{log: log}
}

// Analyze decodes the analysis carried by ctx. It returns nil, nil when the
// request carried none.
func (a *SuppliedAnalyzer) Analyze(ctx context.Context, record *domain.ReceiptRecord, _ time.Time) (*domain.FraudAssessment, error) {
	raw, ok := ctx.Value(suppliedKey{}).([]byte)
	if !ok || len(raw) == 0 {
		return nil, nil
	}

	assessment, err := DecodeAssessment(raw)
	if err != nil {
		a.log.Warn().Err(err).Str("merchant", record.Merchant).Msg("supplied analysis rejected")
		return nil, err
	}
	return assessment, nil
}
