package handler

import (
	"time"

	"question-paper/internal/domain"
	"question-paper/internal/dto"
	"question-paper/internal/export"
	"question-paper/internal/logger"
	"question-paper/internal/middleware"
	"question-paper/internal/render"
	"question-paper/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIHandler exposes the workspace operations as JSON.
type APIHandler struct {
	syllabus   Syllabus
	renderer   *render.Renderer
	sessions   *session.Manager
	sessionTTL time.Duration
}

func NewAPIHandler(syllabus Syllabus, renderer *render.Renderer, sessions *session.Manager, sessionTTL time.Duration) *APIHandler {
	return &APIHandler{
		syllabus:   syllabus,
		renderer:   renderer,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// GetHealth godoc
// @Summary Readiness check
// @Description Reports live sessions and whether the session cache answers
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *APIHandler) GetHealth(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled", Sessions: h.sessions.Len()}
	if !h.sessions.Persistent() {
		return c.JSON(resp)
	}
	if err := h.sessions.Ping(c.UserContext()); err != nil {
		logger.Get().Warn("Session cache unreachable", zap.Error(err))
		resp.Status = "degraded"
		resp.Cache = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.Cache = "ok"
	return c.JSON(resp)
}

// GetSyllabus godoc
// @Summary List syllabus topics
// @Description Returns every unit with its topics in syllabus order, flagging the ones selected in this session
// @Tags syllabus
// @Produce json
// @Success 200 {object} dto.SyllabusResponse
// @Router /syllabus [get]
func (h *APIHandler) GetSyllabus(c *fiber.Ctx) error {
	ws := middleware.CurrentSession(c).Workspace
	units := h.syllabus.Units()
	resp := dto.SyllabusResponse{Units: make([]dto.UnitResponse, 0, len(units))}
	for _, u := range units {
		unit := dto.UnitResponse{Name: u.Name, Topics: make([]dto.TopicResponse, 0, len(u.Topics))}
		for _, t := range u.Topics {
			unit.Topics = append(unit.Topics, dto.TopicResponse{
				Name:       t.Name,
				Difficulty: string(t.Difficulty),
				Selected:   ws.IsSelected(t.Name),
			})
		}
		resp.Units = append(resp.Units, unit)
	}
	return c.JSON(resp)
}

// GetPaper godoc
// @Summary Get workspace state
// @Description Returns the current page, selected topics, questions and total marks
// @Tags paper
// @Produce json
// @Success 200 {object} dto.PaperStateResponse
// @Router /paper [get]
func (h *APIHandler) GetPaper(c *fiber.Ctx) error {
	return c.JSON(paperState(middleware.CurrentSession(c), h.renderer))
}

// ToggleTopic godoc
// @Summary Toggle a topic
// @Description Adds the topic to the selection, or removes it when already selected
// @Tags syllabus
// @Accept json
// @Produce json
// @Param request body dto.ToggleTopicRequest true "Topic name"
// @Success 200 {object} dto.PaperStateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "UNKNOWN_TOPIC"
// @Router /topics/toggle [post]
func (h *APIHandler) ToggleTopic(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := s.Workspace.ToggleTopic(middleware.ValidatedTopic(c)); err != nil {
		return err
	}
	return c.JSON(paperState(s, h.renderer))
}

// GenerateQuestions godoc
// @Summary Seed questions
// @Description Replaces the question list with one templated question per selected topic and moves to the review page
// @Tags questions
// @Produce json
// @Success 200 {object} dto.PaperStateResponse
// @Failure 409 {object} dto.ErrorResponse "INVALID_TRANSITION"
// @Failure 422 {object} dto.ErrorResponse "NO_TOPICS_SELECTED"
// @Router /questions/generate [post]
func (h *APIHandler) GenerateQuestions(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := s.Workspace.GenerateQuestions(); err != nil {
		return err
	}
	return c.JSON(paperState(s, h.renderer))
}

// AddBlankQuestion godoc
// @Summary Add a blank question
// @Tags questions
// @Produce json
// @Success 201 {object} dto.QuestionResponse
// @Router /questions [post]
func (h *APIHandler) AddBlankQuestion(c *fiber.Ctx) error {
	ws := middleware.CurrentSession(c).Workspace
	q := ws.AddBlankQuestion()
	return c.Status(fiber.StatusCreated).JSON(toQuestionResponse(len(ws.Questions()), q))
}

// AddAIQuestion godoc
// @Summary Generate a question with AI
// @Description Picks a random selected topic and appends a generated question. Generation failures yield a fallback question, never an error.
// @Tags questions
// @Produce json
// @Success 201 {object} dto.QuestionResponse
// @Failure 409 {object} dto.ErrorResponse "GENERATION_IN_PROGRESS"
// @Failure 422 {object} dto.ErrorResponse "NO_TOPICS_SELECTED"
// @Router /questions/ai [post]
func (h *APIHandler) AddAIQuestion(c *fiber.Ctx) error {
	ws := middleware.CurrentSession(c).Workspace
	q, err := ws.AddAIQuestion(c.UserContext())
	if err != nil {
		return err
	}
	number := 0
	for i, existing := range ws.Questions() {
		if existing.ID == q.ID {
			number = i + 1
			break
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toQuestionResponse(number, q))
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Description Replaces the text and/or marks. Marks are parsed leniently: unparsable or negative input becomes 0. Unknown ids are ignored.
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.PaperStateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/{id} [patch]
func (h *APIHandler) UpdateQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := middleware.ValidatedQuestionID(c)
	req := middleware.ValidatedUpdate(c)
	if req.Text != nil {
		s.Workspace.UpdateQuestionText(id, *req.Text)
	}
	if marks := req.MarksString(); marks != nil {
		s.Workspace.UpdateMarks(id, *marks)
	}
	return c.JSON(paperState(s, h.renderer))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Unknown ids are ignored.
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.PaperStateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *APIHandler) DeleteQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Workspace.DeleteQuestion(middleware.ValidatedQuestionID(c))
	return c.JSON(paperState(s, h.renderer))
}

// Finalize godoc
// @Summary Finalize the paper
// @Tags paper
// @Produce json
// @Success 200 {object} dto.PaperStateResponse
// @Failure 409 {object} dto.ErrorResponse "INVALID_TRANSITION"
// @Router /paper/finalize [post]
func (h *APIHandler) Finalize(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := s.Workspace.Finalize(); err != nil {
		return err
	}
	return c.JSON(paperState(s, h.renderer))
}

// ResetToSelection godoc
// @Summary Start a new paper
// @Description Returns to the selection page. The selection and question list are kept.
// @Tags paper
// @Produce json
// @Success 200 {object} dto.PaperStateResponse
// @Failure 409 {object} dto.ErrorResponse "INVALID_TRANSITION"
// @Router /paper/reset [post]
func (h *APIHandler) ResetToSelection(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := s.Workspace.ResetToSelection(); err != nil {
		return err
	}
	return c.JSON(paperState(s, h.renderer))
}

// GetTranscript godoc
// @Summary Get the plain-text paper
// @Tags paper
// @Produce json
// @Success 200 {object} dto.TranscriptResponse
// @Router /paper/transcript [get]
func (h *APIHandler) GetTranscript(c *fiber.Ctx) error {
	questions := middleware.CurrentSession(c).Workspace.Questions()
	return c.JSON(dto.TranscriptResponse{Transcript: h.renderer.Transcript(questions)})
}

// GetPrintDocument godoc
// @Summary Get the print document
// @Description A standalone HTML page that prints itself on load and closes afterwards
// @Tags paper
// @Produce html
// @Success 200 {string} string
// @Router /paper/print [get]
func (h *APIHandler) GetPrintDocument(c *fiber.Ctx) error {
	doc, err := h.renderer.StandaloneDocument(middleware.CurrentSession(c).Workspace.Questions())
	if err != nil {
		return domain.NewInternalError("failed to render print document", err)
	}
	c.Type("html", "utf-8")
	return c.Send(doc)
}

// CopyPaper godoc
// @Summary Copy the paper
// @Description Returns the transcript for the client clipboard along with the confirmation notice
// @Tags paper
// @Accept json
// @Produce json
// @Param request body dto.CopyRequest false "Client clipboard capabilities"
// @Success 200 {object} dto.CopyResponse
// @Router /paper/copy [post]
func (h *APIHandler) CopyPaper(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	var req dto.CopyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("invalid request body")
		}
	}

	out := &export.Delivery{}
	notice := &capturedNotice{}
	copier := export.NewCopier(
		export.APIWriter{Supported: req.ClipboardAPI, Out: out},
		export.SelectionWriter{Out: out},
		notice,
	)
	if err := copier.Copy(c.UserContext(), h.renderer.Transcript(s.Workspace.Questions())); err != nil {
		logger.Get().Warn("Copy to clipboard failed", zap.String("session_id", s.ID), zap.Error(err))
		return c.JSON(dto.CopyResponse{Copied: false})
	}

	text, legacy, _ := out.Take()
	return c.JSON(dto.CopyResponse{
		Copied:    true,
		Notice:    notice.text,
		NoticeTTL: notice.ttl.Milliseconds(),
		Clipboard: &dto.ClipboardResponse{Text: text, Legacy: legacy},
	})
}

// ResetSession godoc
// @Summary Discard the workspace
// @Description Drops the whole session, including the topic selection, and starts a fresh one
// @Tags paper
// @Produce json
// @Success 200 {object} dto.PaperStateResponse
// @Router /session [delete]
func (h *APIHandler) ResetSession(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := h.sessions.Discard(c.UserContext(), s.ID); err != nil {
		return err
	}
	fresh := h.sessions.Create()
	middleware.SetSessionCookie(c, fresh, h.sessionTTL)
	return c.JSON(paperState(fresh, h.renderer))
}

type capturedNotice struct {
	text string
	ttl  time.Duration
}

func (n *capturedNotice) Notify(text string, ttl time.Duration) {
	n.text, n.ttl = text, ttl
}
