// Package analysis is the boundary to the external receipt analysis model.
// The model runs outside this module; its JSON output, which may arrive
// wrapped in markdown code fences, is submitted by the caller and decoded
// here into domain types.
package analysis

import (
	"encoding/json"
	"errors"
	"strings"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/pkg/apperror"
)

// StripCodeFences removes markdown code fence markers and surrounding whitespace.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// DecodeRecord parses an extracted receipt.
func DecodeRecord(text []byte) (*domain.ReceiptRecord, error) {
	body := StripCodeFences(string(text))
	if body == "" {
		return nil, apperror.ErrUpstreamFormat(errors.New("empty payload"))
	}

	var record domain.ReceiptRecord
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return nil, apperror.ErrUpstreamFormat(err)
	}
	return &record, nil
}

type assessmentPayload struct {
	Score           *int     `json:"fraud_score"`
	Verdict         string   `json:"verdict"`
	Reasons         []string `json:"reasons"`
	Anomalies       []string `json:"anomalies_found"`
	ArithmeticValid *bool    `json:"arithmetic_valid"`
	LineItemsValid  *bool    `json:"line_items_valid"`
}

// DecodeAssessment parses an analyzer fraud assessment. fraud_score and a
// known verdict are required; the validity flags default to true when omitted.
func DecodeAssessment(text []byte) (*domain.FraudAssessment, error) {
	body := StripCodeFences(string(text))
	if body == "" {
		return nil, apperror.ErrUpstreamFormat(errors.New("empty payload"))
	}

	var p assessmentPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, apperror.ErrUpstreamFormat(err)
	}
	if p.Score == nil {
		return nil, apperror.ErrUpstreamFormat(errors.New("fraud_score is missing"))
	}
	verdict := domain.Verdict(p.Verdict)
	if !verdict.IsValid() {
		return nil, apperror.ErrUpstreamFormat(errors.New("unknown verdict " + p.Verdict))
	}

	a := &domain.FraudAssessment{
		Score:           *p.Score,
		Verdict:         verdict,
		Reasons:         p.Reasons,
		Anomalies:       p.Anomalies,
		ArithmeticValid: true,
		LineItemsValid:  true,
		Source:          domain.AssessmentSourceAnalyzer,
	}
	if a.Reasons == nil {
		a.Reasons = []string{}
	}
	if a.Anomalies == nil {
		a.Anomalies = []string{}
	}
	if p.ArithmeticValid != nil {
		a.ArithmeticValid = *p.ArithmeticValid
	}
	if p.LineItemsValid != nil {
		a.LineItemsValid = *p.LineItemsValid
	}
	return a, nil
}
