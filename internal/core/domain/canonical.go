package domain

import "strings"

const (
	// DefaultCurrency is used when a receipt carries no currency.
	DefaultCurrency = "CAD"
	// NullDate is the canonical date of a receipt without one.
	NullDate = "null"
	// DefaultMemoPrefix tags memos produced by this certification scheme.
	DefaultMemoPrefix = "DEEPFAKERECEIPT"
	// MemoDelimiter separates the prefix from the hash in a memo.
	MemoDelimiter = ":"
)

// CanonicalRecord is the deterministic reduction of a receipt that gets hashed.
// Line items are not part of it.
type CanonicalRecord struct {
	Currency string `json:"currency"`
	Date     string `json:"date"`
	Merchant string `json:"merchant"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// Memo is the ledger text anchoring a receipt hash: <PREFIX>:<hash>.
type Memo string

// BuildMemo joins prefix and hash.
func BuildMemo(prefix, hash string) Memo {
	return Memo(prefix + MemoDelimiter + hash)
}

// HasDelimiter reports whether the memo contains the prefix delimiter.
func (m Memo) HasDelimiter() bool {
	return strings.Contains(string(m), MemoDelimiter)
}

// ClaimedHash returns the last delimiter-separated segment.
func (m Memo) ClaimedHash() string {
	s := string(m)
	return s[strings.LastIndex(s, MemoDelimiter)+1:]
}
