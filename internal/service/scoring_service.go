package service

import (
	"fmt"
	"strings"
	"time"

	"receipt-certifier/internal/core/domain"

	"github.com/shopspring/decimal"
)

const receiptDateLayout = "2006-01-02"

// Rule weights.
const (
	invalidDatePenalty   = 20
	futureDatePenalty    = 40
	arithmeticPenalty    = 50
	lineItemsPenalty     = 30
	missingFieldsPenalty = 20
)

// amountTolerance is the largest absolute difference still treated as rounding.
var amountTolerance = decimal.New(2, -2)

// RuleBasedScorer implements ports.FraudScorer without any external service.
type RuleBasedScorer struct {
	clamp bool
}

// NewRuleBasedScorer creates a scorer. With clamp set the final score is
// limited to [0,100] before the verdict is derived.
func NewRuleBasedScorer(clamp bool) *RuleBasedScorer {
	return &RuleBasedScorer{clamp: clamp}
}

// Score applies the rules in fixed order: date validity, arithmetic, line-item
// consistency, required fields.
func (s *RuleBasedScorer) Score(record *domain.ReceiptRecord, referenceDate time.Time) *domain.FraudAssessment {
	a := &domain.FraudAssessment{
		Reasons:        []string{},
		Anomalies:      []string{},
		LineItemsValid: true,
		Source:         domain.AssessmentSourceRules,
	}

	s.checkDate(a, record, referenceDate)
	s.checkArithmetic(a, record)
	s.checkLineItems(a, record)
	s.checkRequiredFields(a, record)

	if s.clamp && a.Score > domain.MaxClampedScore {
		a.Score = domain.MaxClampedScore
	}
	a.Verdict = domain.VerdictForScore(a.Score)
	return a
}

func (s *RuleBasedScorer) checkDate(a *domain.FraudAssessment, record *domain.ReceiptRecord, referenceDate time.Time) {
	raw := strings.TrimSpace(record.Date)
	date, err := time.Parse(receiptDateLayout, raw)
	if err != nil {
		a.Score += invalidDatePenalty
		a.Anomalies = append(a.Anomalies, fmt.Sprintf("invalid date format: %q", record.Date))
		a.Reasons = append(a.Reasons, "Invalid date format")
		return
	}

	today := time.Date(referenceDate.Year(), referenceDate.Month(), referenceDate.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		a.Score += futureDatePenalty
		a.Anomalies = append(a.Anomalies, fmt.Sprintf("future date: receipt date %s is after %s", raw, today.Format(receiptDateLayout)))
		a.Reasons = append(a.Reasons, fmt.Sprintf("Receipt date %s is invalid (future date)", raw))
	}
}

func (s *RuleBasedScorer) checkArithmetic(a *domain.FraudAssessment, record *domain.ReceiptRecord) {
	subtotal, err1 := amountOrZero(record.Subtotal)
	tax, err2 := amountOrZero(record.Tax)
	total, err3 := amountOrZero(record.Total)
	if bad := firstNonNumeric(map[string]error{"subtotal": err1, "tax": err2, "total": err3}); bad != "" {
		a.Score += arithmeticPenalty
		a.Reasons = append(a.Reasons, fmt.Sprintf("arithmetic mismatch: %s is not a numeric amount", bad))
		return
	}

	computed := subtotal.Add(tax)
	a.ArithmeticValid = withinTolerance(computed, total)
	if !a.ArithmeticValid {
		a.Score += arithmeticPenalty
		a.Reasons = append(a.Reasons, fmt.Sprintf(
			"arithmetic mismatch: subtotal %s + tax %s = %s, but total is %s",
			subtotal.StringFixed(2), tax.StringFixed(2), computed.StringFixed(2), total.StringFixed(2),
		))
		return
	}
	a.Reasons = append(a.Reasons, "arithmetic checks passed")
}

func (s *RuleBasedScorer) checkLineItems(a *domain.FraudAssessment, record *domain.ReceiptRecord) {
	if len(record.LineItems) == 0 {
		return
	}

	sum := decimal.Zero
	for _, item := range record.LineItems {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	subtotal, err := amountOrZero(record.Subtotal)
	if err != nil {
		a.LineItemsValid = false
		a.Score += lineItemsPenalty
		a.Reasons = append(a.Reasons, fmt.Sprintf("line items sum to %s but subtotal is not a numeric amount", sum.StringFixed(2)))
		return
	}

	a.LineItemsValid = withinTolerance(sum, subtotal)
	if !a.LineItemsValid {
		a.Score += lineItemsPenalty
		a.Reasons = append(a.Reasons, fmt.Sprintf("line items sum to %s but subtotal is %s", sum.StringFixed(2), subtotal.StringFixed(2)))
	}
}

func (s *RuleBasedScorer) checkRequiredFields(a *domain.FraudAssessment, record *domain.ReceiptRecord) {
	missing := record.MissingFields()
	if len(missing) == 0 {
		return
	}
	a.Score += missingFieldsPenalty
	a.Anomalies = append(a.Anomalies, "missing fields: "+strings.Join(missing, ", "))
}

// amountOrZero reads an amount; absent amounts count as zero here because the
// required-field rule reports them separately.
func amountOrZero(a domain.Amount) (decimal.Decimal, error) {
	if !a.Present() {
		return decimal.Zero, nil
	}
	return a.Decimal()
}

func firstNonNumeric(errs map[string]error) string {
	for _, field := range []string{"subtotal", "tax", "total"} {
		if errs[field] != nil {
			return field
		}
	}
	return ""
}

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(amountTolerance)
}
