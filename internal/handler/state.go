package handler

import (
	"errors"

	"question-paper/internal/domain"
	"question-paper/internal/dto"
	"question-paper/internal/render"
	"question-paper/internal/session"
)

// Syllabus lists the units shown on the selection page.
type Syllabus interface {
	Units() []domain.Unit
}

func toQuestionResponses(questions []domain.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for i, q := range questions {
		out = append(out, toQuestionResponse(i+1, q))
	}
	return out
}

func toQuestionResponse(number int, q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		Number:     number,
		ID:         q.ID,
		Text:       q.Text,
		Topic:      q.Topic,
		Difficulty: string(q.Difficulty),
		Marks:      q.Marks,
	}
}

func paperState(s *session.Session, renderer *render.Renderer) dto.PaperStateResponse {
	ws := s.Workspace
	questions := ws.Questions()
	selected := ws.SelectedTopics()

	topics := make([]dto.TopicResponse, 0, len(selected))
	for _, t := range selected {
		topics = append(topics, dto.TopicResponse{Name: t.Name, Difficulty: string(t.Difficulty), Selected: true})
	}
	meta := renderer.Meta()
	return dto.PaperStateResponse{
		Page:           string(ws.Page()),
		SelectedTopics: topics,
		Questions:      toQuestionResponses(questions),
		TotalMarks:     render.TotalMarks(questions),
		Loading:        ws.Loading(),
		Meta: dto.PaperMetaResponse{
			Title:    meta.Title,
			Subtitle: meta.Subtitle,
			Duration: meta.Duration,
		},
	}
}

// userFacing reports whether err is a rejection the user can act on, as
// opposed to a server fault.
func userFacing(err error) (*domain.DomainError, bool) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return nil, false
	}
	switch domainErr.Code {
	case domain.ErrNoTopicsSelected, domain.ErrInvalidTransition, domain.ErrUnknownTopic,
		domain.ErrGenerationInProgress, domain.ErrInvalidInput:
		return domainErr, true
	default:
		return nil, false
	}
}
