package quizgen

import (
	"context"
	"fmt"

	"question-paper/internal/domain"
)

// Unavailable is the generator wired in when no provider could be built
// (for example a missing API key). Every call fails, so callers fall back.
type Unavailable struct {
	Reason string
}

func (u Unavailable) GenerateQuestion(context.Context, string) (string, error) {
	return "", fmt.Errorf("question generation unavailable: %s", u.Reason)
}

var _ domain.QuestionGenerator = Unavailable{}
