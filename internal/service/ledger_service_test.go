package service

import (
	"errors"
	"strings"
	"testing"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports/mocks"
	"receipt-certifier/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLedger(prefix string) *LedgerService {
	return NewLedgerService(NewReceiptCanonicalizer(), NewSHA256HashEngine(), prefix, zerolog.Nop())
}

func TestLedgerService_Certify(t *testing.T) {
	svc := newTestLedger("")

	cert, err := svc.Certify(starbucksReceipt())
	require.NoError(t, err)

	assert.Equal(t, "c4a36a3456de33dadd49dd6d9695cf021073258e82c10d9385a31453f956ce73", cert.Hash)
	assert.Equal(t, domain.Memo("DEEPFAKERECEIPT:"+cert.Hash), cert.Memo)
	assert.Equal(t, "starbucks", cert.Canonical.Merchant)
}

func TestLedgerService_Certify_CustomPrefix(t *testing.T) {
	svc := newTestLedger("RCPTV2")

	cert, err := svc.Certify(starbucksReceipt())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(cert.Memo), "RCPTV2:"))
}

func TestLedgerService_Certify_NormalizationError(t *testing.T) {
	svc := newTestLedger("")
	r := starbucksReceipt()
	r.Total = domain.AmountOf("lots")

	cert, err := svc.Certify(r)
	assert.Nil(t, cert)
	assert.True(t, apperror.IsCode(err, apperror.CodeNormalization))
}

func TestLedgerService_ExtractHash(t *testing.T) {
	svc := newTestLedger("")

	tests := []struct {
		name    string
		memo    domain.Memo
		want    string
		wantErr bool
	}{
		{"standard", "DEEPFAKERECEIPT:abc", "abc", false},
		{"right anchored", "A:B:abc", "abc", false},
		{"empty hash", "DEEPFAKERECEIPT:", "", false},
		{"no delimiter", "INVALID_FORMAT_NO_COLON", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtractHash(tt.memo)
			if tt.wantErr {
				assert.True(t, apperror.IsCode(err, apperror.CodeMalformedMemo))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerService_Verify_RoundTrip(t *testing.T) {
	svc := newTestLedger("")
	r := starbucksReceipt()

	cert, err := svc.Certify(r)
	require.NoError(t, err)

	result, err := svc.Verify(r, cert.Memo)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, domain.VerifiedMessage, result.Message)
	assert.Equal(t, cert.Hash, result.ComputedHash)
	assert.Equal(t, cert.Hash, result.ClaimedHash)
}

func TestLedgerService_Verify_TamperedTotal(t *testing.T) {
	svc := newTestLedger("")
	r := starbucksReceipt()

	cert, err := svc.Certify(r)
	require.NoError(t, err)

	tampered := starbucksReceipt()
	tampered.Total = domain.AmountOf("6.75")

	result, err := svc.Verify(tampered, cert.Memo)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.True(t, strings.HasPrefix(result.Message, "NOT VERIFIED"))
	assert.NotEqual(t, result.ComputedHash, result.ClaimedHash)
}

func TestLedgerService_Verify_CaseOnlyDifferencesStillVerify(t *testing.T) {
	svc := newTestLedger("")

	cert, err := svc.Certify(starbucksReceipt())
	require.NoError(t, err)

	shouty := starbucksReceipt()
	shouty.Merchant = "STARBUCKS"
	shouty.Currency = "cad"

	result, err := svc.Verify(shouty, cert.Memo)
	require.NoError(t, err)
	assert.True(t, result.Verified)
}

func TestLedgerService_Verify_MalformedMemo(t *testing.T) {
	svc := newTestLedger("")

	result, err := svc.Verify(starbucksReceipt(), "INVALID_FORMAT_NO_COLON")
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeMalformedMemo))
	require.NotNil(t, result)
	assert.False(t, result.Verified)
	assert.Empty(t, result.ClaimedHash)
}

func TestLedgerService_Verify_HashIsCaseSensitive(t *testing.T) {
	svc := newTestLedger("")

	cert, err := svc.Certify(starbucksReceipt())
	require.NoError(t, err)

	result, err := svc.Verify(starbucksReceipt(), domain.Memo(strings.ToUpper(string(cert.Memo))))
	require.NoError(t, err)
	assert.False(t, result.Verified)
}

func TestLedgerService_Verify_CanonicalizationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	canon := mocks.NewMockCanonicalizer(ctrl)
	hasher := mocks.NewMockHashEngine(ctrl)
	svc := NewLedgerService(canon, hasher, "", zerolog.Nop())

	normErr := apperror.ErrNormalization("tax", errors.New("bad"))
	canon.EXPECT().Canonicalize(gomock.Any()).Return(nil, normErr)

	result, err := svc.Verify(starbucksReceipt(), "DEEPFAKERECEIPT:abc")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, normErr)
}

func TestLedgerService_Verify_UsesInjectedEngines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	canon := mocks.NewMockCanonicalizer(ctrl)
	hasher := mocks.NewMockHashEngine(ctrl)
	svc := NewLedgerService(canon, hasher, "TEST", zerolog.Nop())

	canonical := &domain.CanonicalRecord{Merchant: "x"}
	canon.EXPECT().Canonicalize(gomock.Any()).Return(canonical, nil)
	hasher.EXPECT().Hash(canonical).Return("deadbeef")

	result, err := svc.Verify(&domain.ReceiptRecord{}, "TEST:deadbeef")
	require.NoError(t, err)
	assert.True(t, result.Verified)
}
