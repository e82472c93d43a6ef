package domain

// ComparisonStatus tags the outcome of a certified-reference comparison.
type ComparisonStatus string

const (
	ComparisonMatch    ComparisonStatus = "MATCH"
	ComparisonMismatch ComparisonStatus = "MISMATCH"
	ComparisonNotFound ComparisonStatus = "NOT_FOUND"
)

// Messages carried in Comparison.Differences for the non-diff outcomes.
const (
	AllFieldsMatchMessage    = "All fields match certified receipt"
	ReferenceNotFoundMessage = "Receipt ID not found in certified database"
)

// Comparison is the field-level diff of a user receipt against a certified one.
type Comparison struct {
	ReferenceID string           `json:"receipt_id"`
	Status      ComparisonStatus `json:"status"`
	Differences []string         `json:"differences"`
}

// Matches reports whether every compared field was equal.
func (c *Comparison) Matches() bool {
	return c.Status == ComparisonMatch
}
