package generation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"question-paper/internal/adapter/quizgen"
	"question-paper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type providerFunc func(ctx context.Context, prompt string) (string, error)

func (f providerFunc) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var backprop = domain.Topic{Name: "Backpropagation", Difficulty: domain.DifficultyHard}

func TestPrompt(t *testing.T) {
	p := Prompt(backprop)
	assert.Contains(t, p, `machine learning topic: "Backpropagation"`)
	assert.Contains(t, p, `The difficulty should be "Hard"`)
	assert.Contains(t, p, "just the question itself")
}

func TestFallback(t *testing.T) {
	assert.Equal(t, `Could not generate a question for "Backpropagation". Please write your own.`, Fallback("Backpropagation"))
}

func TestClient_Generate_Success(t *testing.T) {
	var gotPrompt string
	client := NewClient(providerFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "\n  Explain backpropagation.  \n", nil
	}), zap.NewNop())

	text := client.Generate(context.Background(), backprop)

	assert.Equal(t, "Explain backpropagation.", text)
	assert.Equal(t, Prompt(backprop), gotPrompt)
	assert.False(t, client.Loading())
}

func TestClient_Generate_FailuresFallBack(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	names := []string{"Backpropagation", `Quoted "name"`, "Dropout layers & Regularization", ""}

	providers := map[string]domain.QuestionGenerator{
		"error":       providerFunc(func(context.Context, string) (string, error) { return "", errors.New("network down") }),
		"blank text":  providerFunc(func(context.Context, string) (string, error) { return "   ", nil }),
		"unavailable": quizgen.Unavailable{Reason: "no key"},
		"nil":         nil,
	}

	for label, provider := range providers {
		for _, name := range names {
			client := NewClient(provider, zap.New(core))
			text := client.Generate(context.Background(), domain.Topic{Name: name, Difficulty: domain.DifficultyEasy})
			assert.Equal(t, `Could not generate a question for "`+name+`". Please write your own.`, text, label)
			assert.False(t, client.Loading(), label)
		}
	}
	assert.NotZero(t, logs.Len())
}

func TestClient_Generate_FailingTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider, err := quizgen.NewGeminiQuestionGenerator("k", "m", quizgen.WithBaseURL(server.URL))
	require.NoError(t, err)
	client := NewClient(provider, nil)

	text := client.Generate(context.Background(), backprop)

	assert.Equal(t, Fallback("Backpropagation"), text)
	assert.False(t, client.Loading())
}

func TestClient_Loading_DuringCall(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := NewClient(providerFunc(func(context.Context, string) (string, error) {
		close(started)
		<-release
		return "Q", nil
	}), nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		client.Generate(context.Background(), backprop)
	}()

	<-started
	assert.True(t, client.Loading())
	close(release)
	wg.Wait()
	assert.False(t, client.Loading())
}

func TestClient_Loading_OverlappingCalls(t *testing.T) {
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	client := NewClient(providerFunc(func(context.Context, string) (string, error) {
		started.Done()
		<-release
		return "Q", nil
	}), nil)

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			client.Generate(context.Background(), backprop)
			done <- struct{}{}
		}()
	}
	started.Wait()

	release <- struct{}{}
	<-done
	assert.True(t, client.Loading(), "one call still outstanding")

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second call did not finish")
	}
	assert.False(t, client.Loading())
}
