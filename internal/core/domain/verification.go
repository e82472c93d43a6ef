package domain

// Certificate is what gets anchored for a receipt.
type Certificate struct {
	Canonical CanonicalRecord `json:"canonical"`
	Hash      string          `json:"hash"`
	Memo      Memo            `json:"memo"`
}

// Verification is the outcome of checking a receipt against a ledger memo.
type Verification struct {
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
	ComputedHash string `json:"computed_hash"`
	ClaimedHash  string `json:"claimed_hash"`
}

// Verification messages.
const (
	VerifiedMessage    = "VERIFIED: Receipt matches the blockchain record."
	NotVerifiedMessage = "NOT VERIFIED: Receipt data does not match the original certification."
)
