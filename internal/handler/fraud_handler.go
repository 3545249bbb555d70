package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Elactrac/dotnation-sub004/internal/metrics"
	"github.com/Elactrac/dotnation-sub004/internal/models"
	"github.com/Elactrac/dotnation-sub004/internal/repository"
	"github.com/Elactrac/dotnation-sub004/internal/service"
)

type FraudHandler struct {
	engine *service.TrustEngine
	corpus *repository.CorpusRepository
	apiKey string
	logger *zap.Logger
}

// NewFraudHandler builds the HTTP handler for the trust engine. corpus may be
// nil when no database is configured; analysis then relies on the corpus the
// caller supplies per request. apiKey may be empty to disable AI assessment.
func NewFraudHandler(engine *service.TrustEngine, corpus *repository.CorpusRepository, apiKey string, logger *zap.Logger) *FraudHandler {
	return &FraudHandler{
		engine: engine,
		corpus: corpus,
		apiKey: apiKey,
		logger: logger,
	}
}

// AnalyzeCampaign runs the full fraud analysis for a submitted campaign draft.
func (h *FraudHandler) AnalyzeCampaign(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	knownFraud := req.KnownFraudCampaigns
	if len(knownFraud) == 0 && h.corpus != nil {
		entries, err := h.corpus.ListKnownFraud(c.Request.Context())
		if err != nil {
			// Corpus unavailability must not block analysis.
			h.logger.Warn("failed to load known-fraud corpus", zap.Error(err))
		} else {
			knownFraud = entries
			metrics.KnownFraudCorpusSize.Set(float64(len(entries)))
		}
	}

	report := h.engine.DetectFraud(c.Request.Context(), req.Campaign, models.AnalyzeOptions{
		SkipAI:              req.SkipAI,
		APIKey:              h.apiKey,
		KnownFraudCampaigns: knownFraud,
	})

	c.JSON(http.StatusOK, report)
}

// GetPatternCategories exposes the active rule categories for the admin
// surface. Matcher phrases stay server-side.
func (h *FraudHandler) GetPatternCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": service.PatternCategories(),
	})
}
