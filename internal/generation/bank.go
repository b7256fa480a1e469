package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"question-paper/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BankResult is the outcome of a question bank run.
type BankResult struct {
	// Questions maps topic name to generated question text.
	Questions map[string]string
	// Failed lists topics for which no question could be generated.
	Failed []string
}

// GenerateBank asks provider for one question per topic, running at most
// concurrency requests at a time. Individual failures are recorded in
// Failed; only cancellation of ctx aborts the run.
func GenerateBank(ctx context.Context, provider domain.QuestionGenerator, topics []domain.Topic, concurrency int, logger *zap.Logger) (*BankResult, error) {
	if provider == nil {
		return nil, fmt.Errorf("no question generator configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu     sync.Mutex
		result = &BankResult{Questions: make(map[string]string, len(topics))}
		failed = make(map[string]bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, topic := range topics {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := provider.GenerateQuestion(gctx, Prompt(topic))
			text = strings.TrimSpace(text)

			mu.Lock()
			defer mu.Unlock()
			if err != nil || text == "" {
				logger.Warn("Skipping topic", zap.String("topic", topic.Name), zap.Error(err))
				failed[topic.Name] = true
				return nil
			}
			result.Questions[topic.Name] = text
			logger.Info("Generated question", zap.String("topic", topic.Name))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Report failures in syllabus order.
	for _, topic := range topics {
		if failed[topic.Name] {
			result.Failed = append(result.Failed, topic.Name)
		}
	}
	return result, nil
}
