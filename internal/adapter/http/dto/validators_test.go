package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := VerifyRequest{
		Memo: "  DEEPFAKERECEIPT:abc123  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "DEEPFAKERECEIPT:abc123", req.Memo)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CompareRequest{ReceiptID: "receipt<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.ReceiptID, "&lt;script&gt;")
	assert.NotContains(t, req.ReceiptID, "<script>")
}

func TestSanitizeStruct_LeavesRawReceiptUntouched(t *testing.T) {
	raw := []byte(`{"merchant": "  <b>Shop</b>  "}`)
	req := CertifyRequest{ReceiptPayload{Receipt: raw}}
	SanitizeStruct(&req)

	assert.Equal(t, raw, []byte(req.Receipt))
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	s := "  receipt_001  "
	v := struct{ ID *string }{ID: &s}
	SanitizeStruct(&v)

	assert.Equal(t, "receipt_001", *v.ID)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	v := struct{ ID *string }{}
	SanitizeStruct(&v)
	assert.Nil(t, v.ID)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"receipt_001",
		"REF_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"receipt 001", // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate(" 2026-10-18 ")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 18, d.Day())

	for _, bad := range []string{"18/10/2026", "2026-10-32", "today", ""} {
		_, err := ParseISODate(bad)
		assert.Error(t, err, bad)
	}
}
