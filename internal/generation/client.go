// Package generation turns a syllabus topic into exam question text using
// an external text-generation service. Failures never reach the caller:
// they are logged and replaced with a fixed fallback sentence.
package generation

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"question-paper/internal/domain"

	"go.uber.org/zap"
)

// Prompt builds the single instruction sent to the generation service.
func Prompt(topic domain.Topic) string {
	return fmt.Sprintf(`Generate a university-level question about the following machine learning topic: "%s". The difficulty should be "%s". The question should be clear, concise, and suitable for a question paper. Do not include any introductory or concluding phrases, just the question itself.`,
		topic.Name, topic.Difficulty)
}

// Fallback is the text returned whenever generation fails.
func Fallback(topicName string) string {
	return `Could not generate a question for "` + topicName + `". Please write your own.`
}

// Client wraps a domain.QuestionGenerator with the loading flag and the
// fallback policy. The zero value is not usable; use NewClient.
type Client struct {
	provider domain.QuestionGenerator
	logger   *zap.Logger
	inFlight atomic.Int32
}

func NewClient(provider domain.QuestionGenerator, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{provider: provider, logger: logger}
}

// Loading reports whether a Generate call is outstanding.
func (c *Client) Loading() bool {
	return c.inFlight.Load() > 0
}

// Generate asks the provider for one question about topic. It always returns
// usable text: the trimmed generated question, or Fallback(topic.Name).
func (c *Client) Generate(ctx context.Context, topic domain.Topic) string {
	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	if c.provider == nil {
		c.logger.Warn("No question generator configured", zap.String("topic", topic.Name))
		return Fallback(topic.Name)
	}

	text, err := c.provider.GenerateQuestion(ctx, Prompt(topic))
	if err != nil {
		c.logger.Warn("Error generating question",
			zap.String("topic", topic.Name),
			zap.String("difficulty", string(topic.Difficulty)),
			zap.Error(err),
		)
		return Fallback(topic.Name)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.logger.Warn("No text generated from API", zap.String("topic", topic.Name))
		return Fallback(topic.Name)
	}
	c.logger.Debug("Generated question", zap.String("topic", topic.Name), zap.Int("length", len(text)))
	return text
}
