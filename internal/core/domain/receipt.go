package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as received from the extraction layer.
// It keeps the raw text so that an absent amount, a zero amount and a
// malformed amount stay distinguishable.
type Amount struct {
	raw     string
	present bool
}

// AmountOf builds a present amount from its textual form.
func AmountOf(raw string) Amount {
	return Amount{raw: raw, present: true}
}

// Present reports whether the amount was supplied at all.
func (a Amount) Present() bool {
	return a.present && strings.TrimSpace(a.raw) != ""
}

// Raw returns the amount text as received.
func (a Amount) Raw() string {
	return a.raw
}

// Decimal parses the amount. Absent amounts return ErrAmountAbsent.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if !a.Present() {
		return decimal.Zero, ErrAmountAbsent
	}
	return parseAmount(a.raw)
}

// Bounds on accepted amounts. Rescaling a decimal costs time proportional to
// its exponent, so "1e999999999" must be rejected before any arithmetic.
const (
	maxAmountLen      = 40
	maxAmountExponent = 20
)

func parseAmount(raw string) (decimal.Decimal, error) {
	text := strings.TrimSpace(raw)
	if len(text) > maxAmountLen {
		return decimal.Zero, fmt.Errorf("amount %.16q...: %w", text, ErrAmountOutOfRange)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number: %w", raw, err)
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("amount %q: %w", raw, ErrAmountOutOfRange)
	}
	return d, nil
}

// String renders the amount for human-readable messages; absent amounts render as null.
func (a Amount) String() string {
	if !a.Present() {
		return "null"
	}
	return a.raw
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountOf(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}
	*a = AmountOf(n.String())
	return nil
}

// MarshalJSON writes numeric amounts as JSON numbers and anything else as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Present() {
		return []byte("null"), nil
	}
	if d, err := a.Decimal(); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(a.raw)
}

// LineItem is a single purchased item on a receipt.
type LineItem struct {
	Item     string          `json:"item"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// UnmarshalJSON decodes a line item, applying the amount bounds to its price.
// A null or missing price is zero.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var p struct {
		Item     string `json:"item"`
		Quantity int    `json:"quantity"`
		Price    Amount `json:"price"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	price := decimal.Zero
	if p.Price.Present() {
		d, err := p.Price.Decimal()
		if err != nil {
			return fmt.Errorf("line item %q price: %w", p.Item, err)
		}
		price = d
	}

	*li = LineItem{Item: p.Item, Quantity: p.Quantity, Price: price}
	return nil
}

// ReceiptRecord is the structured form of a scanned receipt.
// Treat it as immutable once built.
type ReceiptRecord struct {
	Merchant  string     `json:"merchant"`
	Date      string     `json:"date"`           // YYYY-MM-DD
	Time      string     `json:"time,omitempty"` // optional HH:MM:SS
	Currency  string     `json:"currency"`       // ISO 4217 code
	Subtotal  Amount     `json:"subtotal"`
	Tax       Amount     `json:"tax"`
	Total     Amount     `json:"total"`
	LineItems []LineItem `json:"line_items,omitempty"`
}

// MissingFields lists, in fixed order, the required fields that are absent or empty.
func (r *ReceiptRecord) MissingFields() []string {
	var missing []string
	check := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}
	check("merchant", strings.TrimSpace(r.Merchant) != "")
	check("date", strings.TrimSpace(r.Date) != "")
	check("currency", strings.TrimSpace(r.Currency) != "")
	check("subtotal", r.Subtotal.Present())
	check("tax", r.Tax.Present())
	check("total", r.Total.Present())
	return missing
}
