package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"knowledge-saas-backend/internal/config"
	apperrors "knowledge-saas-backend/internal/errors"
	"knowledge-saas-backend/internal/logger"
)

// chatMessage is a single message in a chat-completion request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest is the request body for the completions endpoint
type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatCompletionResponse is the subset of the completions response we read
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AIService issues prompt templates against an OpenRouter-compatible
// chat-completions API. It is stateless; each operation is a single
// best-effort call with no retry.
type AIService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	referer    string
}

// NewAIService creates a new AI service from configuration
func NewAIService(cfg *config.Config) *AIService {
	return &AIService{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimSuffix(cfg.OpenRouterBaseURL, "/"),
		apiKey:  cfg.OpenRouterAPIKey,
		model:   cfg.AIModel,
		referer: cfg.AIReferer,
	}
}

// SummarizeText returns a 4-5 sentence summary of the content
func (s *AIService) SummarizeText(content string) (string, error) {
	return s.complete("summarization",
		"You summarize articles clearly in 4-5 sentences.",
		fmt.Sprintf("Summarize this article:\n\n%s", content),
	)
}

// GenerateTitle returns a single short title line for the content
func (s *AIService) GenerateTitle(content string) (string, error) {
	return s.complete("title generation",
		"Generate ONE short professional article title. Do not add numbering. Do not add explanations. Return only the title.",
		content,
	)
}

// GenerateTags returns exactly five comma-separated tags for the content
func (s *AIService) GenerateTags(content string) (string, error) {
	return s.complete("tag generation",
		"Generate exactly 5 short SEO tags separated by commas. Do not add any explanation.",
		content,
	)
}

// complete posts one system+user prompt pair and returns the trimmed
// content of the first choice.
func (s *AIService) complete(operation, systemPrompt, userContent string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.NewAIServiceError(operation, fmt.Sprintf("failed to marshal request: %v", err))
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", apperrors.NewAIServiceError(operation, fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", s.referer)
	req.Header.Set("X-Title", "Knowledge SaaS")

	log := logger.New().WithField("operation", operation)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.WithField("error", err).Warn("AI completion request failed")
		return "", apperrors.NewAIServiceError(operation, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.WithField("status", resp.StatusCode).Warn("AI completion returned non-200")
		return "", apperrors.NewAIServiceError(operation, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", apperrors.NewAIServiceError(operation, fmt.Sprintf("failed to decode response: %v", err))
	}

	if len(completion.Choices) == 0 {
		return "", apperrors.NewAIServiceError(operation, "response contained no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
