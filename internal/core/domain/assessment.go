package domain

// Verdict is the three-tier fraud classification.
type Verdict string

const (
	VerdictLikelyLegit      Verdict = "Likely Legit"
	VerdictSuspicious       Verdict = "Suspicious"
	VerdictHighlySuspicious Verdict = "Highly Suspicious"
)

// Score thresholds for verdict mapping.
const (
	LegitMaxScore      = 30
	SuspiciousMaxScore = 70
	MaxClampedScore    = 100
)

// VerdictForScore maps an accumulated fraud score to a verdict.
func VerdictForScore(score int) Verdict {
	switch {
	case score <= LegitMaxScore:
		return VerdictLikelyLegit
	case score <= SuspiciousMaxScore:
		return VerdictSuspicious
	default:
		return VerdictHighlySuspicious
	}
}

// IsValid reports whether v is one of the known verdicts.
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictLikelyLegit, VerdictSuspicious, VerdictHighlySuspicious:
		return true
	}
	return false
}

// AssessmentSource identifies which path produced an assessment.
type AssessmentSource string

const (
	AssessmentSourceRules    AssessmentSource = "rules"
	AssessmentSourceAnalyzer AssessmentSource = "analyzer"
)

// FraudAssessment is the outcome of fraud scoring.
type FraudAssessment struct {
	Score           int              `json:"fraud_score"`
	Verdict         Verdict          `json:"verdict"`
	Reasons         []string         `json:"reasons"`
	Anomalies       []string         `json:"anomalies_found"`
	ArithmeticValid bool             `json:"arithmetic_valid"`
	LineItemsValid  bool             `json:"line_items_valid"`
	Source          AssessmentSource `json:"source,omitempty"`
}
