package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/internal/core/ports"
	"receipt-certifier/pkg/apperror"

	"github.com/rs/zerolog"
)

// AssessmentServiceImpl implements ports.AssessmentService.
// It prefers the external analyzer when one is configured and has an analysis
// for the receipt, and uses the rule-based scorer otherwise.
type AssessmentServiceImpl struct {
	analyzer ports.ReceiptAnalyzer
	scorer   ports.FraudScorer
	fallback bool
	log      zerolog.Logger
}

// NewAssessmentService creates a new AssessmentServiceImpl. analyzer may be nil.
func NewAssessmentService(analyzer ports.ReceiptAnalyzer, scorer ports.FraudScorer, fallback bool, log zerolog.Logger) *AssessmentServiceImpl {
	return &AssessmentServiceImpl{
		analyzer: analyzer,
		scorer:   scorer,
		fallback: fallback,
		log:      log,
	}
}

// Assess scores record against referenceDate, which must be set.
func (s *AssessmentServiceImpl) Assess(ctx context.Context, record *domain.ReceiptRecord, referenceDate time.Time) (*domain.FraudAssessment, error) {
	if record == nil {
		return nil, apperror.Validation("receipt is required")
	}
	if referenceDate.IsZero() {
		return nil, apperror.Validation("reference date is required")
	}

	if s.analyzer == nil {
		return s.scoreWithRules(record, referenceDate), nil
	}

	assessment, err := s.analyze(ctx, record, referenceDate)
	switch {
	case err == nil && assessment != nil:
		return assessment, nil
	case err == nil:
		return s.scoreWithRules(record, referenceDate), nil
	case !s.fallback:
		return nil, err
	}

	s.log.Warn().Err(err).Msg("analyzer failed, falling back to rule-based scoring")
	return s.scoreWithRules(record, referenceDate), nil
}

func (s *AssessmentServiceImpl) analyze(ctx context.Context, record *domain.ReceiptRecord, referenceDate time.Time) (*domain.FraudAssessment, error) {
	assessment, err := s.analyzer.Analyze(ctx, record, referenceDate)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrAnalyzerUnavailable(err)
	}
	if assessment == nil {
		return nil, nil
	}
	if !assessment.Verdict.IsValid() {
		return nil, apperror.ErrUpstreamFormat(fmt.Errorf("unknown verdict %q", assessment.Verdict))
	}
	if assessment.Score < 0 {
		return nil, apperror.ErrUpstreamFormat(fmt.Errorf("negative fraud score %d", assessment.Score))
	}

	assessment.Source = domain.AssessmentSourceAnalyzer
	if assessment.Reasons == nil {
		assessment.Reasons = []string{}
	}
	if assessment.Anomalies == nil {
		assessment.Anomalies = []string{}
	}

	s.log.Info().
		Int("fraud_score", assessment.Score).
		Str("verdict", string(assessment.Verdict)).
		Msg("receipt assessed by analyzer")
	return assessment, nil
}

func (s *AssessmentServiceImpl) scoreWithRules(record *domain.ReceiptRecord, referenceDate time.Time) *domain.FraudAssessment {
	assessment := s.scorer.Score(record, referenceDate)
	s.log.Info().
		Int("fraud_score", assessment.Score).
		Str("verdict", string(assessment.Verdict)).
		Msg("receipt assessed by rules")
	return assessment
}
