package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

const (
	defaultAIEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultAIModel    = "gpt-4o-mini"
	defaultAITimeout  = 10 * time.Second
)

// AIAnalyzerConfig configures the external AI assessment endpoint and HTTP
// behavior. Zero values fall back to the defaults above.
type AIAnalyzerConfig struct {
	Endpoint   string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// AIAnalyzer asks an external chat-completion model for a second opinion on a
// campaign draft. It is an enhancement only: callers treat every failure as a
// skipped analysis, never as a failed report.
type AIAnalyzer struct {
	cfg AIAnalyzerConfig
}

func NewAIAnalyzer(cfg AIAnalyzerConfig) *AIAnalyzer {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultAIEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultAITimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &AIAnalyzer{cfg: cfg}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type aiVerdict struct {
	RiskScore  int    `json:"risk_score"`
	Assessment string `json:"assessment"`
}

// Assess requests an AI fraud assessment for the draft. The call is bounded
// by the configured timeout in addition to ctx; any transport, status, or
// parse failure is returned as an error for the caller to degrade on.
func (a *AIAnalyzer) Assess(ctx context.Context, draft *models.CampaignDraft, apiKey string) (models.AIAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Assess the fraud risk of this crowdfunding campaign. Respond with JSON {\"risk_score\": 0-100, \"assessment\": \"...\"}.\n\nTitle: %s\nDescription: %s\nGoal: %.2f\nBeneficiary: %s",
		draft.Title, draft.Description, draft.Goal, draft.Beneficiary,
	)

	body, err := json.Marshal(chatCompletionRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a fraud analyst for a donation platform."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return models.AIAnalysis{}, fmt.Errorf("marshal ai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return models.AIAnalysis{}, fmt.Errorf("build ai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := a.cfg.HTTPClient.Do(req)
	if err != nil {
		return models.AIAnalysis{}, fmt.Errorf("ai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.AIAnalysis{}, fmt.Errorf("ai endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return models.AIAnalysis{}, fmt.Errorf("decode ai response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return models.AIAnalysis{}, fmt.Errorf("ai response contained no choices")
	}

	verdict, err := parseVerdict(completion.Choices[0].Message.Content)
	if err != nil {
		return models.AIAnalysis{}, err
	}

	return models.AIAnalysis{
		Skipped:    false,
		RiskScore:  verdict.RiskScore,
		Assessment: verdict.Assessment,
		Model:      a.cfg.Model,
	}, nil
}

// parseVerdict extracts the JSON verdict from the model output, tolerating
// surrounding prose or markdown fences.
func parseVerdict(content string) (aiVerdict, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return aiVerdict{}, fmt.Errorf("ai response contained no verdict object")
	}

	var verdict aiVerdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
		return aiVerdict{}, fmt.Errorf("parse ai verdict: %w", err)
	}
	if verdict.RiskScore < 0 {
		verdict.RiskScore = 0
	}
	if verdict.RiskScore > 100 {
		verdict.RiskScore = 100
	}
	return verdict, nil
}
