package model

import (
	"time"
)

// DetectedClause pairs a rule with its non-empty, position-deduplicated
// match set. Never constructed with zero matches.
type DetectedClause struct {
	ID       string   `json:"id"`
	Rule     Rule     `json:"rule"`
	Matches  []Match  `json:"matches"`
	Severity Severity `json:"severity"`
}

// MissingTerm is a required section none of whose keywords appear in the text.
type MissingTerm struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Importance     Severity `json:"importance"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// ObligationType classifies an extracted obligation.
type ObligationType string

const (
	ObligationPayment  ObligationType = "payment"
	ObligationDelivery ObligationType = "delivery"
	ObligationNotice   ObligationType = "notice"
	ObligationDeadline ObligationType = "deadline"
	ObligationOther    ObligationType = "other"
)

// Obligation is an extracted statement of a required action, payment or
// deadline. Party stays "unknown" until resolved by a smarter pass.
type Obligation struct {
	ID            string         `json:"id"`
	Type          ObligationType `json:"type"`
	Description   string         `json:"description"`
	Party         string         `json:"party"`
	Deadline      *time.Time     `json:"deadline,omitempty"`
	ExtractedText string         `json:"extracted_text"`
	Position      int            `json:"position"`
}

// RiskLevel is derived from the overall score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskBreakdown counts the contributions to the overall score.
// All missing-term importances share a single counter.
type RiskBreakdown struct {
	CriticalIssues    int `json:"critical_issues"`
	HighRiskClauses   int `json:"high_risk_clauses"`
	MediumRiskClauses int `json:"medium_risk_clauses"`
	LowRiskClauses    int `json:"low_risk_clauses"`
	MissingTerms      int `json:"missing_terms"`
}

// RiskScore is the aggregate risk assessment. Overall is always in [0,100].
type RiskScore struct {
	Overall   int           `json:"overall"`
	Breakdown RiskBreakdown `json:"breakdown"`
	RiskLevel RiskLevel     `json:"risk_level"`
}

// AIInsights is the structured form of the language model's reply.
type AIInsights struct {
	Summary         string   `json:"summary"`
	KeyFindings     []string `json:"key_findings"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
}

// AnalysisResult is the sole externally consumed output of the core.
// AIInsights is nil when the language-model round trip failed or was skipped;
// the rules-derived fields are valid either way.
type AnalysisResult struct {
	Metadata        ContractMetadata `json:"metadata"`
	RiskScore       RiskScore        `json:"risk_score"`
	DetectedClauses []DetectedClause `json:"detected_clauses"`
	MissingTerms    []MissingTerm    `json:"missing_terms"`
	Obligations     []Obligation     `json:"obligations"`
	AIInsights      *AIInsights      `json:"ai_insights,omitempty"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}

// Analysis is a stored analysis record.
type Analysis struct {
	ID        string          `json:"id"`
	Tenant    string          `json:"tenant"`
	Status    string          `json:"status"` // pending, completed, failed
	Result    *AnalysisResult `json:"result,omitempty"`
	ReportURL string          `json:"report_url,omitempty"`
	AIError   string          `json:"ai_error,omitempty"`
	ErrorMsg  string          `json:"error_msg,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Analysis status constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
