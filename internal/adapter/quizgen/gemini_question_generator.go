package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"question-paper/internal/domain"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	apiKeyHeader         = "x-goog-api-key"
)

// ErrEmptyResponse is returned when the service answers without any text at
// candidates[0].content.parts[0].text.
var ErrEmptyResponse = errors.New("no text generated from API")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini api error (status %d): %s", e.StatusCode, e.Body)
}

// GeminiQuestionGenerator implements domain.QuestionGenerator against the
// Gemini generateContent REST endpoint.
type GeminiQuestionGenerator struct {
	apiKey    string
	modelName string
	baseURL   string
	client    *http.Client
}

// GeminiOption configures a GeminiQuestionGenerator.
type GeminiOption func(*GeminiQuestionGenerator)

// WithBaseURL sets the API base URL. An empty url keeps the default.
func WithBaseURL(url string) GeminiOption {
	return func(g *GeminiQuestionGenerator) {
		if url != "" {
			g.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) GeminiOption {
	return func(g *GeminiQuestionGenerator) {
		g.client = client
	}
}

// NewGeminiQuestionGenerator creates a new instance of GeminiQuestionGenerator.
func NewGeminiQuestionGenerator(apiKey string, modelName string, opts ...GeminiOption) (*GeminiQuestionGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}
	g := &GeminiQuestionGenerator{
		apiKey:    apiKey,
		modelName: modelName,
		baseURL:   defaultGeminiBaseURL,
		client:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateQuestion sends the prompt as a single user turn and returns the
// first candidate's first text part.
func (g *GeminiQuestionGenerator) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// Key stays out of the URL: transport errors quote the URL verbatim.
	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := gemResp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Static assertion to ensure GeminiQuestionGenerator implements QuestionGenerator
var _ domain.QuestionGenerator = (*GeminiQuestionGenerator)(nil)
