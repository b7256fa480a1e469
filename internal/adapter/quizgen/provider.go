package quizgen

import (
	"net/http"
	"time"

	"question-paper/internal/config"
	"question-paper/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 60 * time.Second

// NewFromConfig builds the configured provider. A provider that cannot be
// built is replaced by Unavailable, so AI questions fall back to
// placeholder text instead of stopping the caller.
func NewFromConfig(cfg config.GenerationConfig, logger *zap.Logger) domain.QuestionGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := &http.Client{Timeout: DefaultTimeout}

	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := NewGeminiQuestionGenerator(cfg.Gemini.APIKey, cfg.Gemini.Model,
			WithBaseURL(cfg.Gemini.BaseURL),
			WithHTTPClient(httpClient),
		)
		if err != nil {
			logger.Warn("Gemini question generator unavailable", zap.Error(err))
			return Unavailable{Reason: err.Error()}
		}
		logger.Info("Gemini question generator initialized", zap.String("model", cfg.Gemini.Model))
		return gen
	case config.ProviderOllama:
		llm, err := ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			logger.Warn("Failed to create Ollama client", zap.Error(err))
			return Unavailable{Reason: err.Error()}
		}
		gen, err := NewLLMQuestionGenerator(llm)
		if err != nil {
			logger.Warn("Ollama question generator unavailable", zap.Error(err))
			return Unavailable{Reason: err.Error()}
		}
		logger.Info("Ollama question generator initialized",
			zap.String("server_url", cfg.Ollama.ServerURL),
			zap.String("model", cfg.Ollama.Model),
		)
		return gen
	default:
		logger.Warn("Unsupported generation provider", zap.String("provider", cfg.Provider))
		return Unavailable{Reason: "unsupported provider " + cfg.Provider}
	}
}
