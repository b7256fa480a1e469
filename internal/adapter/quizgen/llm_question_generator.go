package quizgen

import (
	"context"
	"fmt"
	"strings"

	"question-paper/internal/domain"

	"github.com/tmc/langchaingo/llms"
)

// LLMQuestionGenerator implements domain.QuestionGenerator on top of any
// langchaingo model (ollama in the default wiring).
type LLMQuestionGenerator struct {
	llm         llms.Model
	temperature float64
}

// NewLLMQuestionGenerator creates a new instance of LLMQuestionGenerator.
func NewLLMQuestionGenerator(llm llms.Model) (*LLMQuestionGenerator, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	return &LLMQuestionGenerator{llm: llm, temperature: 0.7}, nil
}

func (g *LLMQuestionGenerator) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	text := stripThinking(raw)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// stripThinking drops a leading <think>...</think> block that reasoning
// models emit before the answer.
func stripThinking(s string) string {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "<think>"); start != -1 {
		if end := strings.Index(s, "</think>"); end > start {
			s = s[:start] + s[end+len("</think>"):]
		}
	}
	return strings.TrimSpace(s)
}

var _ domain.QuestionGenerator = (*LLMQuestionGenerator)(nil)
