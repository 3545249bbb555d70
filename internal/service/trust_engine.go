package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Elactrac/dotnation-sub004/internal/metrics"
	"github.com/Elactrac/dotnation-sub004/internal/models"
)

// Risk score weighting. Pattern score contributes at patternWeight, structure
// issues add a capped penalty, and a known-fraud match adds a flat boost large
// enough to push a near-identical copy into the critical band on its own.
const (
	patternWeight = 0.6

	structurePenaltyHigh   = 20
	structurePenaltyMedium = 10
	structurePenaltyLow    = 5
	structurePenaltyCap    = 40

	knownFraudMatchBoost    = 40
	knownFraudHighRiskBoost = 85
)

// Risk level bands, inclusive on the lower edge.
const (
	mediumRiskThreshold   = 40
	highRiskThreshold     = 60
	criticalRiskThreshold = 80
)

// TrustEngine orchestrates the full fraud analysis for a campaign draft:
// pattern detection, structure validation, known-fraud matching, and an
// optional external AI assessment.
type TrustEngine struct {
	ai     *AIAnalyzer
	logger *zap.Logger
}

func NewTrustEngine(ai *AIAnalyzer, logger *zap.Logger) *TrustEngine {
	return &TrustEngine{
		ai:     ai,
		logger: logger,
	}
}

// DetectFraud analyzes a campaign draft and always returns a well-formed
// report. Unusable input produces an error report recommending review;
// failures of the AI capability degrade to a skipped AI section. No code path
// panics or propagates an error to the caller.
func (e *TrustEngine) DetectFraud(ctx context.Context, draft *models.CampaignDraft, opts models.AnalyzeOptions) *models.FraudReport {
	startTime := time.Now()

	if draft == nil || (draft.Title == "" && draft.Description == "") {
		e.logger.Warn("rejecting unusable campaign draft")
		return &models.FraudReport{
			ReportID:       uuid.New().String(),
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
			RiskLevel:      models.RiskLevelHigh,
			Recommendation: models.RecommendationReview,
			Analysis: models.AnalysisBreakdown{
				PatternAnalysis:     models.PatternAnalysisResult{Detected: []models.DetectedPattern{}},
				StructureValidation: models.StructureValidationResult{Issues: []models.StructureIssue{}},
				AIAnalysis:          models.AIAnalysis{Skipped: true},
				KnownFraudCheck:     models.KnownFraudCheckResult{Matches: []models.KnownFraudMatch{}},
			},
			Summary:      "Campaign could not be analyzed",
			ProcessingMS: time.Since(startTime).Milliseconds(),
			Error:        true,
			Message:      "campaign draft is missing or has no analyzable content",
		}
	}

	patternResult := DetectScamPatterns(draft.Title, draft.Description)
	structureResult := ValidateCampaignStructure(draft)
	fraudResult := CheckAgainstKnownFraud(draft, opts.KnownFraudCampaigns)
	aiResult := e.runAIAnalysis(ctx, draft, opts)

	score := e.calculateOverallScore(patternResult, structureResult, fraudResult)
	riskLevel := calculateRiskLevel(score)
	recommendation := makeRecommendation(riskLevel)

	report := &models.FraudReport{
		ReportID:         uuid.New().String(),
		CampaignID:       draft.ID,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		OverallRiskScore: score,
		RiskLevel:        riskLevel,
		Recommendation:   recommendation,
		Analysis: models.AnalysisBreakdown{
			PatternAnalysis:     patternResult,
			StructureValidation: structureResult,
			AIAnalysis:          aiResult,
			KnownFraudCheck:     fraudResult,
		},
		Summary:      buildSummary(patternResult, structureResult, fraudResult, aiResult, riskLevel),
		ProcessingMS: time.Since(startTime).Milliseconds(),
	}

	metrics.AnalysesTotal.WithLabelValues(string(riskLevel)).Inc()
	metrics.AnalysisDuration.Observe(time.Since(startTime).Seconds())

	e.logger.Info("fraud analysis completed",
		zap.String("campaign_id", draft.ID),
		zap.Int("risk_score", score),
		zap.String("risk_level", string(riskLevel)),
		zap.String("recommendation", string(recommendation)))

	if riskLevel == models.RiskLevelCritical {
		e.logger.Warn("critical-risk campaign detected",
			zap.String("campaign_id", draft.ID),
			zap.Bool("known_fraud_match", fraudResult.MatchesFound))
	}

	return report
}

func (e *TrustEngine) runAIAnalysis(ctx context.Context, draft *models.CampaignDraft, opts models.AnalyzeOptions) models.AIAnalysis {
	if opts.SkipAI || opts.APIKey == "" || e.ai == nil {
		metrics.AIRequestsTotal.WithLabelValues("skipped").Inc()
		return models.AIAnalysis{Skipped: true}
	}

	analysis, err := e.ai.Assess(ctx, draft, opts.APIKey)
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("failed").Inc()
		e.logger.Warn("ai assessment failed, continuing without it",
			zap.Error(err),
			zap.String("campaign_id", draft.ID))
		return models.AIAnalysis{Skipped: true}
	}

	metrics.AIRequestsTotal.WithLabelValues("ok").Inc()
	return analysis
}

func (e *TrustEngine) calculateOverallScore(
	patterns models.PatternAnalysisResult,
	structure models.StructureValidationResult,
	fraud models.KnownFraudCheckResult,
) int {
	score := int(patternWeight * float64(patterns.Score))

	var penalty int
	for _, issue := range structure.Issues {
		switch issue.Severity {
		case models.SeverityHigh:
			penalty += structurePenaltyHigh
		case models.SeverityMedium:
			penalty += structurePenaltyMedium
		default:
			penalty += structurePenaltyLow
		}
	}
	if penalty > structurePenaltyCap {
		penalty = structurePenaltyCap
	}
	score += penalty

	if fraud.HighRisk {
		score += knownFraudHighRiskBoost
	} else if fraud.MatchesFound {
		score += knownFraudMatchBoost
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func calculateRiskLevel(score int) models.RiskLevel {
	switch {
	case score >= criticalRiskThreshold:
		return models.RiskLevelCritical
	case score >= highRiskThreshold:
		return models.RiskLevelHigh
	case score >= mediumRiskThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func makeRecommendation(riskLevel models.RiskLevel) models.Recommendation {
	switch riskLevel {
	case models.RiskLevelCritical:
		return models.RecommendationReject
	case models.RiskLevelHigh, models.RiskLevelMedium:
		return models.RecommendationReview
	default:
		return models.RecommendationApprove
	}
}

func buildSummary(
	patterns models.PatternAnalysisResult,
	structure models.StructureValidationResult,
	fraud models.KnownFraudCheckResult,
	ai models.AIAnalysis,
	riskLevel models.RiskLevel,
) string {
	var parts []string

	if patterns.HasRedFlags {
		parts = append(parts, fmt.Sprintf("%d scam-language indicator(s) detected", len(patterns.Detected)))
	}
	if !structure.Valid {
		parts = append(parts, "structural problems found")
	} else if structure.WarningCount > 0 {
		parts = append(parts, fmt.Sprintf("%d structural warning(s)", structure.WarningCount))
	}
	if fraud.HighRisk {
		parts = append(parts, "near-identical match against known fraud")
	} else if fraud.MatchesFound {
		parts = append(parts, fmt.Sprintf("%d known-fraud similarity match(es)", len(fraud.Matches)))
	}
	if !ai.Skipped {
		parts = append(parts, fmt.Sprintf("AI risk estimate %d/100", ai.RiskScore))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("No fraud indicators found; risk level %s", riskLevel)
	}
	return fmt.Sprintf("Risk level %s: %s", riskLevel, strings.Join(parts, "; "))
}
