package ports

import (
	"context"
	"time"

	"receipt-certifier/internal/core/domain"
)

// Canonicalizer reduces a receipt to its canonical form.
type Canonicalizer interface {
	Canonicalize(record *domain.ReceiptRecord) (*domain.CanonicalRecord, error)
}

// HashEngine serializes and digests canonical records.
type HashEngine interface {
	Serialize(canonical *domain.CanonicalRecord) []byte
	Hash(canonical *domain.CanonicalRecord) string
}

// LedgerVerifier builds ledger memos and checks receipts against them.
type LedgerVerifier interface {
	Certify(record *domain.ReceiptRecord) (*domain.Certificate, error)
	ExtractHash(memo domain.Memo) (string, error)
	Verify(record *domain.ReceiptRecord, memo domain.Memo) (*domain.Verification, error)
}

// FraudScorer produces a deterministic rule-based assessment.
// referenceDate stands in for "today".
type FraudScorer interface {
	Score(record *domain.ReceiptRecord, referenceDate time.Time) *domain.FraudAssessment
}

// CertifiedComparator diffs a receipt against a certified reference.
// On an unknown identifier it returns a NOT_FOUND comparison together with a
// not-found error.
type CertifiedComparator interface {
	Compare(record *domain.ReceiptRecord, referenceID string) (*domain.Comparison, error)
}

// ReceiptAnalyzer is the external analysis collaborator (an AI model).
// Analyze returns nil, nil when no analysis exists for the receipt; the
// rule-based scorer then applies.
type ReceiptAnalyzer interface {
	Analyze(ctx context.Context, record *domain.ReceiptRecord, referenceDate time.Time) (*domain.FraudAssessment, error)
}

// AssessmentService chooses between the analyzer and the rule-based scorer.
type AssessmentService interface {
	Assess(ctx context.Context, record *domain.ReceiptRecord, referenceDate time.Time) (*domain.FraudAssessment, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
