package ports

import (
	"context"

	"receipt-certifier/internal/core/domain"
)

// CertifiedReceiptSource loads the certified reference receipts, keyed by
// reference identifier. It is read once at startup.
type CertifiedReceiptSource interface {
	LoadCertified(ctx context.Context) (map[string]domain.ReceiptRecord, error)
}
