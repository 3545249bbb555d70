package models

import "time"

type RiskLevel string
type Recommendation string
type Severity string
type PatternCategory string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"

	RecommendationApprove Recommendation = "approve"
	RecommendationReview  Recommendation = "review"
	RecommendationReject  Recommendation = "reject"

	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"

	CategoryUrgentLanguage      PatternCategory = "urgent_language"
	CategoryUnrealisticPromises PatternCategory = "unrealistic_promises"
	CategoryTechnicalBuzzwords  PatternCategory = "technical_buzzwords"
	CategorySuspiciousRequests  PatternCategory = "suspicious_requests"
	CategoryPressureTactics     PatternCategory = "pressure_tactics"
)

// CampaignDraft is a campaign submission as produced by the campaign-creation
// flow. It is input only; this service never mutates or stores it.
type CampaignDraft struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        float64   `json:"goal"`
	Deadline    time.Time `json:"deadline"`
	Beneficiary string    `json:"beneficiary"`
}

// KnownFraudEntry is a previously confirmed fraudulent campaign supplied by
// the caller (or loaded from the corpus table) for similarity matching.
type KnownFraudEntry struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Reason      string `json:"reason" db:"reason"`
}

type DetectedPattern struct {
	Category    PatternCategory `json:"category"`
	Severity    Severity        `json:"severity"`
	MatchedText string          `json:"matched_text"`
}

type PatternAnalysisResult struct {
	HasRedFlags bool              `json:"has_red_flags"`
	Detected    []DetectedPattern `json:"detected"`
	Score       int               `json:"score"`
}

type StructureIssue struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

type StructureValidationResult struct {
	Valid        bool             `json:"valid"`
	Issues       []StructureIssue `json:"issues"`
	WarningCount int              `json:"warning_count"`
}

type KnownFraudMatch struct {
	EntryID               string `json:"entry_id"`
	TitleSimilarity       string `json:"title_similarity"`
	DescriptionSimilarity string `json:"description_similarity"`
	Reason                string `json:"reason"`
}

type KnownFraudCheckResult struct {
	MatchesFound bool              `json:"matches_found"`
	HighRisk     bool              `json:"high_risk"`
	Matches      []KnownFraudMatch `json:"matches"`
}

// AIAnalysis is the optional external AI opinion. Skipped is true whenever the
// AI capability was disabled, unkeyed, or failed; the remaining fields are only
// meaningful when Skipped is false.
type AIAnalysis struct {
	Skipped    bool   `json:"skipped"`
	RiskScore  int    `json:"risk_score,omitempty"`
	Assessment string `json:"assessment,omitempty"`
	Model      string `json:"model,omitempty"`
}

type AnalysisBreakdown struct {
	PatternAnalysis     PatternAnalysisResult     `json:"pattern_analysis"`
	StructureValidation StructureValidationResult `json:"structure_validation"`
	AIAnalysis          AIAnalysis                `json:"ai_analysis"`
	KnownFraudCheck     KnownFraudCheckResult     `json:"known_fraud_check"`
}

// FraudReport is the terminal artifact of a single analysis. Every invocation
// returns a well-formed report; Error marks reports produced from unusable
// input, which always carry the review recommendation.
type FraudReport struct {
	ReportID         string            `json:"report_id"`
	CampaignID       string            `json:"campaign_id,omitempty"`
	Timestamp        string            `json:"timestamp"`
	OverallRiskScore int               `json:"overall_risk_score"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	Recommendation   Recommendation    `json:"recommendation"`
	Analysis         AnalysisBreakdown `json:"analysis"`
	Summary          string            `json:"summary"`
	ProcessingMS     int64             `json:"processing_ms"`
	Error            bool              `json:"error,omitempty"`
	Message          string            `json:"message,omitempty"`
}

// AnalyzeOptions controls a single DetectFraud invocation.
type AnalyzeOptions struct {
	SkipAI              bool
	APIKey              string
	KnownFraudCampaigns []KnownFraudEntry
}

// AnalyzeRequest is the HTTP request body for the analyze endpoint.
type AnalyzeRequest struct {
	Campaign            *CampaignDraft    `json:"campaign"`
	SkipAI              bool              `json:"skip_ai"`
	KnownFraudCampaigns []KnownFraudEntry `json:"known_fraud_campaigns"`
}
