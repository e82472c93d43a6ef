package service

import (
	"crypto/subtle"
	"fmt"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports"
	"receipt-certifier/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerService implements ports.LedgerVerifier.
type LedgerService struct {
	canon      ports.Canonicalizer
	hasher     ports.HashEngine
	memoPrefix string
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerService. An empty prefix falls back to
// domain.DefaultMemoPrefix.
func NewLedgerService(canon ports.Canonicalizer, hasher ports.HashEngine, memoPrefix string, log zerolog.Logger) *LedgerService {
	if memoPrefix == "" {
		memoPrefix = domain.DefaultMemoPrefix
	}
	return &LedgerService{
		canon:      canon,
		hasher:     hasher,
		memoPrefix: memoPrefix,
		log:        log,
	}
}

// Certify canonicalizes and hashes a receipt and builds the memo to anchor.
func (s *LedgerService) Certify(record *domain.ReceiptRecord) (*domain.Certificate, error) {
	canonical, err := s.canon.Canonicalize(record)
	if err != nil {
		return nil, err
	}

	hash := s.hasher.Hash(canonical)
	memo := domain.BuildMemo(s.memoPrefix, hash)

	s.log.Debug().Str("hash", hash).Msg("receipt certified")

	return &domain.Certificate{
		Canonical: *canonical,
		Hash:      hash,
		Memo:      memo,
	}, nil
}

// ExtractHash returns the segment after the last delimiter of memo.
func (s *LedgerService) ExtractHash(memo domain.Memo) (string, error) {
	if !memo.HasDelimiter() {
		return "", apperror.ErrMalformedMemo()
	}
	return memo.ClaimedHash(), nil
}

// Verify recomputes the receipt hash and compares it with the hash claimed by
// memo. A malformed memo yields an unverified result together with the error.
func (s *LedgerService) Verify(record *domain.ReceiptRecord, memo domain.Memo) (*domain.Verification, error) {
	canonical, err := s.canon.Canonicalize(record)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing receipt: %w", err)
	}
	computed := s.hasher.Hash(canonical)

	claimed, err := s.ExtractHash(memo)
	if err != nil {
		return &domain.Verification{
			Verified:     false,
			Message:      "NOT VERIFIED: Invalid ledger memo format.",
			ComputedHash: computed,
		}, err
	}

	result := &domain.Verification{
		Verified:     subtle.ConstantTimeCompare([]byte(computed), []byte(claimed)) == 1,
		ComputedHash: computed,
		ClaimedHash:  claimed,
	}
	if result.Verified {
		result.Message = domain.VerifiedMessage
	} else {
		result.Message = domain.NotVerifiedMessage
	}

	s.log.Info().
		Bool("verified", result.Verified).
		Str("computed_hash", computed).
		Str("claimed_hash", claimed).
		Msg("receipt verification")

	return result, nil
}
