package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/josedguti/contract-guard-ai-app/config"
	"github.com/josedguti/contract-guard-ai-app/model"
)

// AI collaborator failure classes. Handlers map these to distinct,
// retryable conditions without discarding the rules result.
var (
	// ErrAINotConfigured means no API key (or an invalid one) is configured.
	ErrAINotConfigured = errors.New("AI service not configured")
	// ErrAIRateLimited means the provider rejected the call with a rate limit.
	ErrAIRateLimited = errors.New("AI service rate limit exceeded")
)

// AIService calls the OpenAI chat-completions API to generate insights for
// an analysis. Its textual reply is normalized by ParseInsights.
type AIService struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

func NewAIService(cfg *config.OpenAIConfig) *AIService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &AIService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether an API key is configured.
func (s *AIService) Enabled() bool {
	return s.config.APIKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateInsights sends the rules-pass summary plus the contract text to
// the language model and parses its reply into structured insights.
func (s *AIService) GenerateInsights(ctx context.Context, contractText string, rulesResult *model.AnalysisResult) (*model.AIInsights, error) {
	if !s.Enabled() {
		return nil, ErrAINotConfigured
	}

	reqBody := chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt()},
			{Role: "user", Content: BuildAnalysisPrompt(contractText, rulesResult)},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.config.BaseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrAIRateLimited
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrAINotConfigured, apiErrorMessage(body))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, apiErrorMessage(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI API returned no choices")
	}

	insights := ParseInsights(result.Choices[0].Message.Content)
	if insights.Summary == "" {
		insights.Summary = "AI analysis unavailable"
	}

	return &insights, nil
}

func apiErrorMessage(body []byte) string {
	var apiErr chatErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(body)
}
