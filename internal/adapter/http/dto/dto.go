package dto

import (
	"encoding/json"

	"receipt-certifier/internal/core/domain"
)

// ReceiptPayload carries an extracted receipt. It may be a JSON object or a
// JSON string holding the extraction output verbatim, code fences included.
type ReceiptPayload struct {
	Receipt json.RawMessage `json:"receipt" binding:"required"`
}

// CertifyRequest is the request body for receipt certification.
type CertifyRequest struct {
	ReceiptPayload
}

// VerifyRequest is the request body for verifying a receipt against a ledger memo.
type VerifyRequest struct {
	ReceiptPayload
	Memo string `json:"memo" binding:"required,max=256"`
}

// AssessRequest is the request body for fraud assessment.
type AssessRequest struct {
	ReceiptPayload
	ReferenceDate string `json:"reference_date,omitempty" binding:"omitempty,iso_date"`
	// Analysis is raw output of the external analysis model, as an object or
	// a (possibly fenced) string.
	Analysis json.RawMessage `json:"analysis,omitempty"`
}

// CompareRequest is the request body for comparison with a certified receipt.
type CompareRequest struct {
	ReceiptPayload
	ReceiptID string `json:"receipt_id" binding:"required,max=100,safe_id"`
}

// CertifyResponse is the response body for a certified receipt.
type CertifyResponse struct {
	Canonical domain.CanonicalRecord `json:"canonical"`
	Hash      string                 `json:"hash"`
	Memo      string                 `json:"memo"`
}

// VerifyResponse is the response body for a verification.
type VerifyResponse struct {
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
	ComputedHash string `json:"computed_hash"`
	ClaimedHash  string `json:"claimed_hash,omitempty"`
}

// CompareResponse is the response body for a certified comparison.
type CompareResponse struct {
	ReceiptID   string   `json:"receipt_id"`
	Status      string   `json:"status"`
	Matches     bool     `json:"matches"`
	Differences []string `json:"differences"`
}

// NewVerifyResponse converts a verification result to its DTO.
func NewVerifyResponse(v *domain.Verification) VerifyResponse {
	return VerifyResponse{
		Verified:     v.Verified,
		Message:      v.Message,
		ComputedHash: v.ComputedHash,
		ClaimedHash:  v.ClaimedHash,
	}
}

// NewCompareResponse converts a comparison result to its DTO.
func NewCompareResponse(c *domain.Comparison) CompareResponse {
	return CompareResponse{
		ReceiptID:   c.ReferenceID,
		Status:      string(c.Status),
		Matches:     c.Matches(),
		Differences: c.Differences,
	}
}
