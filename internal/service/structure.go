package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

const (
	minTitleLength       = 10
	maxTitleLength       = 200
	minDescriptionLength = 50

	// Goals above highGoalThreshold need more than a token description;
	// goals above goalCeiling are flagged regardless.
	highGoalThreshold = 50_000
	goalCeiling       = 1_000_000

	minDescriptionForHighGoal = 100

	capsRatioThreshold    = 0.3
	capsMinLetters        = 20
	specialCharThreshold  = 0.05
	specialCharMinMatches = 5
)

// ValidateCampaignStructure checks the shape and formatting of a submission
// without interpreting its meaning. High-severity issues invalidate the
// campaign; medium and low issues are warnings only.
func ValidateCampaignStructure(draft *models.CampaignDraft) models.StructureValidationResult {
	result := models.StructureValidationResult{
		Issues: []models.StructureIssue{},
	}

	title := strings.TrimSpace(draft.Title)
	description := strings.TrimSpace(draft.Description)

	if len(title) < minTitleLength {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "title",
			Severity: models.SeverityHigh,
			Message:  fmt.Sprintf("Title is too short (minimum %d characters)", minTitleLength),
		})
	} else if len(title) > maxTitleLength {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "title",
			Severity: models.SeverityMedium,
			Message:  fmt.Sprintf("Title is too long (maximum %d characters)", maxTitleLength),
		})
	}

	if len(description) < minDescriptionLength {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "description",
			Severity: models.SeverityHigh,
			Message:  fmt.Sprintf("Description is too short (minimum %d characters)", minDescriptionLength),
		})
	}

	if draft.Goal > highGoalThreshold && len(description) < minDescriptionForHighGoal {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "description",
			Severity: models.SeverityHigh,
			Message:  "High funding goal with minimal description",
		})
	}

	if upper, letters := countCase(title + description); letters >= capsMinLetters &&
		float64(upper)/float64(letters) > capsRatioThreshold {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "formatting",
			Severity: models.SeverityMedium,
			Message:  "Excessive use of capital letters",
		})
	}

	if special, total := countSpecialChars(title + description); special >= specialCharMinMatches &&
		total > 0 && float64(special)/float64(total) > specialCharThreshold {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "formatting",
			Severity: models.SeverityLow,
			Message:  "High density of special characters",
		})
	}

	if draft.Goal > goalCeiling {
		result.Issues = append(result.Issues, models.StructureIssue{
			Type:     "goal",
			Severity: models.SeverityMedium,
			Message:  fmt.Sprintf("Funding goal exceeds %d", goalCeiling),
		})
	}

	result.WarningCount = len(result.Issues)
	result.Valid = true
	for _, issue := range result.Issues {
		if issue.Severity == models.SeverityHigh {
			result.Valid = false
			break
		}
	}

	return result
}

func countCase(s string) (upper, letters int) {
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return upper, letters
}

func countSpecialChars(s string) (special, total int) {
	for _, r := range s {
		total++
		switch r {
		case '!', '$', '*', '#', '@':
			special++
		}
	}
	return special, total
}
