package domain

import "context"

// QuestionGenerator is the port to an external text-generation service.
// Implementations return the raw generated text or an error; the
// generation client decides what the caller sees on failure.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, prompt string) (string, error)
}
