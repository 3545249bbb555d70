package service

import (
	"strings"
	"testing"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

func TestDetectScamPatternsClean(t *testing.T) {
	result := DetectScamPatterns(
		"Community Garden Project",
		"We are building a community garden for local families to grow fresh vegetables together.",
	)

	if result.HasRedFlags {
		t.Errorf("HasRedFlags = true, want false")
	}
	if len(result.Detected) != 0 {
		t.Errorf("Detected = %v, want empty", result.Detected)
	}
	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
}

func TestDetectScamPatternsUrgentLanguage(t *testing.T) {
	result := DetectScamPatterns("Act Now!", "Limited time offer! Urgent action required!")

	if !result.HasRedFlags {
		t.Fatalf("HasRedFlags = false, want true")
	}
	if result.Score <= 0 {
		t.Errorf("Score = %d, want > 0", result.Score)
	}
	if result.Detected[0].Category != models.CategoryUrgentLanguage {
		t.Errorf("first detected category = %s, want %s", result.Detected[0].Category, models.CategoryUrgentLanguage)
	}
}

func TestDetectScamPatternsScoreCap(t *testing.T) {
	scamPhrase := "Act now! Guaranteed returns! 100% profit! Risk-free! Send crypto via wire transfer! VIP access for insiders! Limited spots! "
	description := strings.Repeat(scamPhrase, 5)

	result := DetectScamPatterns("Get rich quick with quantum encryption", description)

	if result.Score > 100 {
		t.Errorf("Score = %d, want <= 100", result.Score)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 for keyword-dense input", result.Score)
	}
}

func TestDetectScamPatternsWorstSeverityFirst(t *testing.T) {
	// Urgent language is medium severity, suspicious requests are high.
	result := DetectScamPatterns("Act now", "Please send crypto to our wallet before the deadline.")

	if len(result.Detected) < 2 {
		t.Fatalf("Detected = %v, want at least 2 entries", result.Detected)
	}
	if result.Detected[0].Severity != models.SeverityHigh {
		t.Errorf("first detected severity = %s, want %s", result.Detected[0].Severity, models.SeverityHigh)
	}
	if result.Detected[0].Category != models.CategorySuspiciousRequests {
		t.Errorf("first detected category = %s, want %s", result.Detected[0].Category, models.CategorySuspiciousRequests)
	}
}

func TestDetectScamPatternsCaseInsensitive(t *testing.T) {
	result := DetectScamPatterns("GUARANTEED RETURNS", "")

	if !result.HasRedFlags {
		t.Fatalf("HasRedFlags = false, want true for uppercase match")
	}
	if result.Detected[0].Category != models.CategoryUnrealisticPromises {
		t.Errorf("category = %s, want %s", result.Detected[0].Category, models.CategoryUnrealisticPromises)
	}
}

func TestPatternCategories(t *testing.T) {
	categories := PatternCategories()

	want := []models.PatternCategory{
		models.CategoryUrgentLanguage,
		models.CategoryUnrealisticPromises,
		models.CategoryTechnicalBuzzwords,
		models.CategorySuspiciousRequests,
		models.CategoryPressureTactics,
	}
	if len(categories) != len(want) {
		t.Fatalf("len(categories) = %d, want %d", len(categories), len(want))
	}
	for _, category := range want {
		if _, ok := categories[category]; !ok {
			t.Errorf("missing category %s", category)
		}
	}
}
