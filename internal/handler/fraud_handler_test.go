package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Elactrac/dotnation-sub004/internal/models"
	"github.com/Elactrac/dotnation-sub004/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := service.NewTrustEngine(nil, zap.NewNop())
	h := NewFraudHandler(engine, nil, "", zap.NewNop())

	router := gin.New()
	router.POST("/api/v1/fraud/analyze", h.AnalyzeCampaign)
	router.GET("/api/v1/fraud/patterns", h.GetPatternCategories)
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeCampaign(t *testing.T) {
	router := newTestRouter()

	w := postAnalyze(t, router, models.AnalyzeRequest{
		Campaign: &models.CampaignDraft{
			ID:          "camp-42",
			Title:       "Community theater lighting upgrade",
			Description: "Our volunteer-run theater needs new stage lights. Donations cover fixtures, wiring, and installation by a licensed electrician.",
			Goal:        8_000,
		},
		SkipAI: true,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var report models.FraudReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "camp-42", report.CampaignID)
	assert.Equal(t, models.RiskLevelLow, report.RiskLevel)
	assert.Equal(t, models.RecommendationApprove, report.Recommendation)
	assert.False(t, report.Error)
}

func TestAnalyzeCampaignWithCallerCorpus(t *testing.T) {
	router := newTestRouter()

	draft := &models.CampaignDraft{
		ID:          "camp-43",
		Title:       "Urgent medical fund for sick children",
		Description: "We urgently need donations to cover medical bills for children in our care. Every dollar goes directly to treatment costs.",
		Goal:        50_000,
	}

	w := postAnalyze(t, router, models.AnalyzeRequest{
		Campaign: draft,
		SkipAI:   true,
		KnownFraudCampaigns: []models.KnownFraudEntry{
			{
				ID:          "fraud-001",
				Title:       draft.Title,
				Description: draft.Description,
				Reason:      "Confirmed diversion of funds",
			},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var report models.FraudReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Analysis.KnownFraudCheck.MatchesFound)
	assert.True(t, report.Analysis.KnownFraudCheck.HighRisk)
	assert.Equal(t, models.RiskLevelCritical, report.RiskLevel)
	assert.Equal(t, models.RecommendationReject, report.Recommendation)
}

func TestAnalyzeCampaignMissingDraft(t *testing.T) {
	router := newTestRouter()

	w := postAnalyze(t, router, models.AnalyzeRequest{SkipAI: true})

	// Unusable input still yields a well-formed report, not an HTTP error.
	require.Equal(t, http.StatusOK, w.Code)

	var report models.FraudReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Error)
	assert.Equal(t, models.RecommendationReview, report.Recommendation)
}

func TestAnalyzeCampaignMalformedJSON(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fraud/analyze", bytes.NewReader([]byte(`{not json`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPatternCategories(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fraud/patterns", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories map[string]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Categories, 5)
	assert.Contains(t, body.Categories, "urgent_language")
}
