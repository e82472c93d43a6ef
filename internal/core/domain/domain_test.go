package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictForScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  Verdict
	}{
		{"zero", 0, VerdictLikelyLegit},
		{"upper legit bound", 30, VerdictLikelyLegit},
		{"lower suspicious bound", 31, VerdictSuspicious},
		{"upper suspicious bound", 70, VerdictSuspicious},
		{"highly suspicious", 71, VerdictHighlySuspicious},
		{"above hundred", 140, VerdictHighlySuspicious},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerdictForScore(tt.score))
		})
	}
}

func TestVerdict_IsValid(t *testing.T) {
	assert.True(t, VerdictLikelyLegit.IsValid())
	assert.True(t, VerdictSuspicious.IsValid())
	assert.True(t, VerdictHighlySuspicious.IsValid())
	assert.False(t, Verdict("Unreadable").IsValid())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		present bool
		raw     string
	}{
		{"number", `45.99`, true, "45.99"},
		{"integer", `5`, true, "5"},
		{"string", `"3.68"`, true, "3.68"},
		{"null", `null`, false, ""},
		{"garbage string", `"N/A"`, true, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.present, a.Present())
			assert.Equal(t, tt.raw, a.Raw())
		})
	}
}

func TestAmount_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`{"value":1}`), &a))
}

func TestAmount_Decimal(t *testing.T) {
	d, err := AmountOf(" 49.67 ").Decimal()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("49.67")))

	_, err = Amount{}.Decimal()
	assert.ErrorIs(t, err, ErrAmountAbsent)

	_, err = AmountOf("twelve").Decimal()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAmountAbsent)
}

func TestAmount_Decimal_OutOfRange(t *testing.T) {
	for _, raw := range []string{"1e999999999", "1e-999999999", "1E21", "12345678901234567890123456789012345678901"} {
		_, err := AmountOf(raw).Decimal()
		assert.ErrorIs(t, err, ErrAmountOutOfRange, raw)
	}

	for _, raw := range []string{"1.5e3", "0.000001", "-12.30", "1e20"} {
		_, err := AmountOf(raw).Decimal()
		assert.NoError(t, err, raw)
	}
}

func TestLineItem_UnmarshalJSON(t *testing.T) {
	var li LineItem
	require.NoError(t, json.Unmarshal([]byte(`{"item":"Milk","quantity":2,"price":"4.99"}`), &li))
	assert.Equal(t, "Milk", li.Item)
	assert.Equal(t, 2, li.Quantity)
	assert.True(t, li.Price.Equal(decimal.RequireFromString("4.99")))

	li = LineItem{}
	require.NoError(t, json.Unmarshal([]byte(`{"item":"Bag","quantity":1,"price":null}`), &li))
	assert.True(t, li.Price.IsZero())

	for _, price := range []string{`1e999999999`, `"1e-999999999"`} {
		err := json.Unmarshal([]byte(`{"item":"Gum","quantity":1,"price":`+price+`}`), &li)
		assert.ErrorIs(t, err, ErrAmountOutOfRange, price)
	}
}

func TestAmount_ZeroIsPresent(t *testing.T) {
	a := AmountOf("0")
	assert.True(t, a.Present(), "a zero amount is still a supplied amount")
	assert.False(t, Amount{}.Present())
	assert.False(t, AmountOf("  ").Present())
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}{A: AmountOf("5.10"), B: Amount{}, C: AmountOf("abc")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5.1,"b":null,"c":"abc"}`, string(out))
}

func TestReceiptRecord_UnmarshalJSON(t *testing.T) {
	input := `{
		"merchant": "Walmart",
		"date": "2026-02-07",
		"time": "14:30:22",
		"currency": "USD",
		"subtotal": 45.99,
		"tax": 3.68,
		"total": 49.67,
		"line_items": [{"item": "Milk 2%", "quantity": 2, "price": 4.99}]
	}`

	var r ReceiptRecord
	require.NoError(t, json.Unmarshal([]byte(input), &r))
	assert.Equal(t, "Walmart", r.Merchant)
	assert.Equal(t, "45.99", r.Subtotal.Raw())
	require.Len(t, r.LineItems, 1)
	assert.Equal(t, 2, r.LineItems[0].Quantity)
	assert.True(t, r.LineItems[0].Price.Equal(decimal.RequireFromString("4.99")))
	assert.Empty(t, r.MissingFields())
}

func TestReceiptRecord_MissingFields(t *testing.T) {
	r := ReceiptRecord{Merchant: "CVS", Total: AmountOf("25")}
	assert.Equal(t, []string{"date", "currency", "subtotal", "tax"}, r.MissingFields())
}

func TestMemo(t *testing.T) {
	m := BuildMemo(DefaultMemoPrefix, "abc123")
	assert.Equal(t, Memo("DEEPFAKERECEIPT:abc123"), m)
	assert.True(t, m.HasDelimiter())
	assert.Equal(t, "abc123", m.ClaimedHash())

	assert.Equal(t, "c", Memo("a:b:c").ClaimedHash(), "split is right-anchored")
	assert.Equal(t, "", Memo("PREFIX:").ClaimedHash())
	assert.False(t, Memo("INVALID_FORMAT_NO_COLON").HasDelimiter())
}

func TestComparison_Matches(t *testing.T) {
	assert.True(t, (&Comparison{Status: ComparisonMatch}).Matches())
	assert.False(t, (&Comparison{Status: ComparisonMismatch}).Matches())
	assert.False(t, (&Comparison{Status: ComparisonNotFound}).Matches())
}

func TestAuditAction_Constants(t *testing.T) {
	assert.Equal(t, AuditAction("CERTIFY"), AuditActionCertify)
	assert.Equal(t, AuditAction("VERIFY"), AuditActionVerify)
	assert.Equal(t, AuditAction("ASSESS"), AuditActionAssess)
	assert.Equal(t, AuditAction("COMPARE"), AuditActionCompare)
}
