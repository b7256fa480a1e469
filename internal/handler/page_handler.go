package handler

import (
	"bytes"
	"time"

	"question-paper/internal/domain"
	"question-paper/internal/export"
	"question-paper/internal/logger"
	"question-paper/internal/middleware"
	"question-paper/internal/render"
	"question-paper/internal/session"
	"question-paper/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageHandler serves the HTML builder. Every POST performs one workspace
// operation and redirects back to the current page.
type PageHandler struct {
	syllabus   Syllabus
	renderer   *render.Renderer
	sessions   *session.Manager
	sessionTTL time.Duration
	validator  *validation.Validator
}

func NewPageHandler(syllabus Syllabus, renderer *render.Renderer, sessions *session.Manager, sessionTTL time.Duration) *PageHandler {
	return &PageHandler{
		syllabus:   syllabus,
		renderer:   renderer,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		validator:  validation.NewValidator(),
	}
}

// Index renders the page the workspace is on.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	ws := s.Workspace

	selectedTopics := ws.SelectedTopics()
	selected := make(map[string]bool, len(selectedTopics))
	for _, t := range selectedTopics {
		selected[t.Name] = true
	}

	var buf bytes.Buffer
	err := h.renderer.Page(&buf, render.PageData{
		Page:          ws.Page(),
		Units:         h.syllabus.Units(),
		Selected:      selected,
		SelectedCount: len(selectedTopics),
		Loading:       ws.Loading(),
		Paper:         h.renderer.Paper(ws.Questions()),
		Notice:        s.TakeNotice(),
		Clipboard:     s.TakeClipboard(),
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// ToggleTopic handles POST /topics/toggle.
func (h *PageHandler) ToggleTopic(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return h.done(c, s, s.Workspace.ToggleTopic(c.FormValue("topic")))
}

// GenerateQuestions handles POST /questions/generate.
func (h *PageHandler) GenerateQuestions(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return h.done(c, s, s.Workspace.GenerateQuestions())
}

// AddBlankQuestion handles POST /questions/blank.
func (h *PageHandler) AddBlankQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Workspace.AddBlankQuestion()
	return h.done(c, s, nil)
}

// AddAIQuestion handles POST /questions/ai. The request is held until the
// generated question has been appended.
func (h *PageHandler) AddAIQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	_, err := s.Workspace.AddAIQuestion(c.UserContext())
	return h.done(c, s, err)
}

// UpdateQuestion handles POST /questions/:id with text and marks fields.
// The form is held to the same rules as PATCH /api/questions/:id.
func (h *PageHandler) UpdateQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := c.Params("id")
	text := formValue(c, "text")
	marks := formValue(c, "marks")
	if errs := h.validator.ValidateQuestionUpdate(text, marks); len(errs) > 0 {
		return h.done(c, s, domain.NewInvalidInputError(errs.Error()))
	}
	if text != nil {
		s.Workspace.UpdateQuestionText(id, *text)
	}
	if marks != nil {
		s.Workspace.UpdateMarks(id, *marks)
	}
	return h.done(c, s, nil)
}

// formValue returns the posted field, or nil when the form omits it.
func formValue(c *fiber.Ctx, key string) *string {
	args := c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

// DeleteQuestion handles POST /questions/:id/delete.
func (h *PageHandler) DeleteQuestion(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	s.Workspace.DeleteQuestion(c.Params("id"))
	return h.done(c, s, nil)
}

// Finalize handles POST /paper/finalize.
func (h *PageHandler) Finalize(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return h.done(c, s, s.Workspace.Finalize())
}

// ResetToSelection handles POST /paper/reset.
func (h *PageHandler) ResetToSelection(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return h.done(c, s, s.Workspace.ResetToSelection())
}

// Print serves the standalone print document for a new window.
func (h *PageHandler) Print(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	doc, err := h.renderer.StandaloneDocument(s.Workspace.Questions())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(doc)
}

// Copy handles POST /paper/copy. The transcript is handed to the browser
// on the next render through the clipboard API when the form reports it,
// otherwise as a selected text area. A copy failure is logged only.
func (h *PageHandler) Copy(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	copier := export.NewCopier(
		export.APIWriter{Supported: c.FormValue("clipboard_api") == "1", Out: s.Clipboard},
		export.SelectionWriter{Out: s.Clipboard},
		s,
	)
	if err := copier.Copy(c.UserContext(), h.renderer.Transcript(s.Workspace.Questions())); err != nil {
		logger.Get().Warn("Copy to clipboard failed", zap.String("session_id", s.ID), zap.Error(err))
	}
	return h.done(c, s, nil)
}

// ResetSession handles POST /session/reset: the workspace is discarded,
// including the topic selection, and a fresh session starts.
func (h *PageHandler) ResetSession(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if err := h.sessions.Discard(c.UserContext(), s.ID); err != nil {
		logger.Get().Warn("Failed to discard session", zap.String("session_id", s.ID), zap.Error(err))
	}
	middleware.SetSessionCookie(c, h.sessions.Create(), h.sessionTTL)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// done turns user-facing rejections into a warning notice and redirects.
// Anything else goes to the error handler.
func (h *PageHandler) done(c *fiber.Ctx, s *session.Session, err error) error {
	if err != nil {
		domainErr, ok := userFacing(err)
		if !ok {
			return err
		}
		logger.Get().Warn("Action rejected",
			zap.String("path", c.Path()),
			zap.String("code", string(domainErr.Code)),
			zap.String("message", domainErr.Message),
		)
		s.Warn(domainErr.Message)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
