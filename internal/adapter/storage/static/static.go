// Package static serves the built-in certified reference receipts.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"receipt-certifier/internal/core/domain"
)

//go:embed certified.json
var certifiedJSON []byte

// Source implements ports.CertifiedReceiptSource from a JSON document
// keyed by receipt id.
type Source struct {
	data []byte
}

// NewSource returns the source backed by the embedded reference set.
func NewSource() *Source {
	return &Source{data: certifiedJSON}
}

// NewSourceFromJSON returns a source backed by data.
func NewSourceFromJSON(data []byte) *Source {
	return &Source{data: data}
}

// LoadCertified decodes the reference set.
func (s *Source) LoadCertified(_ context.Context) (map[string]domain.ReceiptRecord, error) {
	var out map[string]domain.ReceiptRecord
	if err := json.Unmarshal(s.data, &out); err != nil {
		return nil, fmt.Errorf("decoding certified receipts: %w", err)
	}
	if out == nil {
		out = map[string]domain.ReceiptRecord{}
	}
	return out, nil
}
