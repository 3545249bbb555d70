package service

import (
	"sort"
	"strings"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

// FraudPatternRule maps a scam-language category to its trigger phrases and
// the severity every match in that category carries.
type FraudPatternRule struct {
	Category models.PatternCategory
	Severity models.Severity
	Matchers []string
}

// fraudPatternRules is the static rule table. It is initialized once and
// read-only for the lifetime of the process.
var fraudPatternRules = []FraudPatternRule{
	{
		Category: models.CategoryUrgentLanguage,
		Severity: models.SeverityMedium,
		Matchers: []string{"act now", "limited time", "don't miss out", "urgent", "hurry", "last chance"},
	},
	{
		Category: models.CategoryUnrealisticPromises,
		Severity: models.SeverityHigh,
		Matchers: []string{"guaranteed returns", "100% profit", "risk-free", "get rich quick", "double your money", "no risk"},
	},
	{
		Category: models.CategoryTechnicalBuzzwords,
		Severity: models.SeverityLow,
		Matchers: []string{"quantum encryption", "ai-powered", "unlimited scalability", "revolutionary blockchain", "military-grade"},
	},
	{
		Category: models.CategorySuspiciousRequests,
		Severity: models.SeverityHigh,
		Matchers: []string{"send crypto", "wire transfer", "gift card", "no refunds", "untraceable payment", "send funds directly"},
	},
	{
		Category: models.CategoryPressureTactics,
		Severity: models.SeverityMedium,
		Matchers: []string{"limited spots", "exclusive", "vip access", "insider", "only a few left", "invite only"},
	},
}

// severityWeights determines how much each match of a given severity adds to
// the pattern score. The summed score is clamped to 100 so keyword-dense
// input cannot overflow the scale.
var severityWeights = map[models.Severity]int{
	models.SeverityHigh:   25,
	models.SeverityMedium: 15,
	models.SeverityLow:    8,
}

var severityRank = map[models.Severity]int{
	models.SeverityHigh:   3,
	models.SeverityMedium: 2,
	models.SeverityLow:    1,
}

// DetectScamPatterns scans the campaign title and description for scam
// language. Matching is case-insensitive substring search; each hit adds its
// category's severity weight to the score. Detected entries are ordered
// most-severe-first so the leading entry always reflects the worst finding.
func DetectScamPatterns(title, description string) models.PatternAnalysisResult {
	text := strings.ToLower(title + " " + description)

	result := models.PatternAnalysisResult{
		Detected: []models.DetectedPattern{},
	}

	for _, rule := range fraudPatternRules {
		for _, matcher := range rule.Matchers {
			if strings.Contains(text, matcher) {
				result.Detected = append(result.Detected, models.DetectedPattern{
					Category:    rule.Category,
					Severity:    rule.Severity,
					MatchedText: matcher,
				})
				result.Score += severityWeights[rule.Severity]
			}
		}
	}

	sort.SliceStable(result.Detected, func(i, j int) bool {
		return severityRank[result.Detected[i].Severity] > severityRank[result.Detected[j].Severity]
	})

	if result.Score > 100 {
		result.Score = 100
	}
	result.HasRedFlags = len(result.Detected) > 0

	return result
}

// PatternCategories returns the active rule categories with their severities,
// for the informational patterns endpoint. Matcher phrases are not exposed.
func PatternCategories() map[models.PatternCategory]models.Severity {
	categories := make(map[models.PatternCategory]models.Severity, len(fraudPatternRules))
	for _, rule := range fraudPatternRules {
		categories[rule.Category] = rule.Severity
	}
	return categories
}
