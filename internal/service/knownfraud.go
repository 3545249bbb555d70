package service

import (
	"fmt"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

const (
	// A corpus entry matches when the title clearly resembles the candidate
	// and the description supports it, or when either field is a
	// near-verbatim copy on its own.
	titleMatchThreshold    = 0.6
	descSupportThreshold   = 0.4
	exactCopyThreshold     = 0.9
	highRiskTitleThreshold = 0.85
	highRiskDescThreshold  = 0.85
)

// CheckAgainstKnownFraud compares the candidate against a corpus of confirmed
// fraudulent campaigns using text similarity on title and description. An
// empty corpus yields no matches and never errors.
func CheckAgainstKnownFraud(draft *models.CampaignDraft, corpus []models.KnownFraudEntry) models.KnownFraudCheckResult {
	result := models.KnownFraudCheckResult{
		Matches: []models.KnownFraudMatch{},
	}

	for _, entry := range corpus {
		titleSim := Similarity(draft.Title, entry.Title)
		descSim := Similarity(draft.Description, entry.Description)

		matched := (titleSim > titleMatchThreshold && descSim > descSupportThreshold) ||
			titleSim > exactCopyThreshold ||
			descSim > exactCopyThreshold
		if !matched {
			continue
		}

		result.Matches = append(result.Matches, models.KnownFraudMatch{
			EntryID:               entry.ID,
			TitleSimilarity:       formatPercent(titleSim),
			DescriptionSimilarity: formatPercent(descSim),
			Reason:                entry.Reason,
		})

		if titleSim > highRiskTitleThreshold && descSim > highRiskDescThreshold {
			result.HighRisk = true
		}
	}

	result.MatchesFound = len(result.Matches) > 0
	return result
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
