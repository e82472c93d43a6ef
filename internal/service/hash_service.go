package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"receipt-certifier/internal/core/domain"
)

// SHA256HashEngine implements ports.HashEngine.
type SHA256HashEngine struct{}

// NewSHA256HashEngine creates a new hash engine.
func NewSHA256HashEngine() *SHA256HashEngine {
	return &SHA256HashEngine{}
}

// Serialize writes the canonical record as a compact JSON object with keys in
// lexicographic order. Control characters, DEL and non-ASCII characters are
// written as \uXXXX escapes, the same bytes a compact, key-sorted, ASCII-only
// JSON encoder produces for these string fields.
func (e *SHA256HashEngine) Serialize(canonical *domain.CanonicalRecord) []byte {
	fields := []struct{ key, value string }{
		{"merchant", canonical.Merchant},
		{"date", canonical.Date},
		{"currency", canonical.Currency},
		{"subtotal", canonical.Subtotal},
		{"tax", canonical.Tax},
		{"total", canonical.Total},
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })

	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(&b, f.key)
		b.WriteByte(':')
		writeJSONString(&b, f.value)
	}
	b.WriteByte('}')
	return []byte(b.String())
}

// Hash returns the lowercase hex SHA-256 digest of the serialized record.
func (e *SHA256HashEngine) Hash(canonical *domain.CanonicalRecord) string {
	sum := sha256.Sum256(e.Serialize(canonical))
	return hex.EncodeToString(sum[:])
}

// writeJSONString writes s as an ASCII-only JSON string literal.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20, r == 0x7f:
				fmt.Fprintf(b, `\u%04x`, r)
			case r < utf8.RuneSelf:
				b.WriteRune(r)
			case r > 0xffff:
				r -= 0x10000
				fmt.Fprintf(b, `\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}
