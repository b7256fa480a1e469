package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"question-paper/internal/domain"
	"question-paper/internal/dto"
	"question-paper/internal/generation"
	"question-paper/internal/handler"
	"question-paper/internal/middleware"
	"question-paper/internal/paper"
	"question-paper/internal/render"
	"question-paper/internal/session"
	"question-paper/internal/syllabus"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockQuestionGenerator struct {
	GenerateQuestionFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockQuestionGenerator) GenerateQuestion(ctx context.Context, prompt string) (string, error) {
	if m.GenerateQuestionFunc != nil {
		return m.GenerateQuestionFunc(ctx, prompt)
	}
	panic("MockQuestionGenerator.GenerateQuestionFunc not implemented")
}

type firstTopic struct{}

func (firstTopic) IntN(int) int { return 0 }

var testMeta = domain.PaperMetadata{Title: "Question Paper", Subtitle: "Machine Learning (Advanced Deep Learning)", Duration: "3 Hours"}

func setupApp(t *testing.T, gen domain.QuestionGenerator, opts ...session.Option) *fiber.App {
	t.Helper()
	catalog := syllabus.Default()
	renderer, err := render.NewRenderer(testMeta, "https://cdn.example.com/tailwind.min.css")
	require.NoError(t, err)

	manager := session.NewManager(func() *paper.Workspace {
		return paper.NewWorkspace(catalog, generation.NewClient(gen, nil), paper.WithRandom(firstTopic{}))
	}, opts...)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app,
		middleware.Session(manager, time.Hour),
		handler.NewPageHandler(catalog, renderer, manager, time.Hour),
		handler.NewAPIHandler(catalog, renderer, manager, time.Hour),
		middleware.NewValidationMiddleware(),
	)
	return app
}

// browser replays the session cookie like a real client.
type browser struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func (b *browser) do(method, target, contentType, body string) *http.Response {
	b.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if b.cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: b.cookie})
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			b.cookie = c.Value
		}
	}
	return resp
}

func (b *browser) json(method, target, body string, out interface{}) int {
	b.t.Helper()
	resp := b.do(method, target, fiber.MIMEApplicationJSON, body)
	data, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	if out != nil {
		require.NoError(b.t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

func (b *browser) form(target string, values url.Values) *http.Response {
	b.t.Helper()
	return b.do(http.MethodPost, target, fiber.MIMEApplicationForm, values.Encode())
}

func (b *browser) page() string {
	b.t.Helper()
	resp := b.do(http.MethodGet, "/", "", "")
	require.Equal(b.t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return string(data)
}

func TestAPI_FullFlow(t *testing.T) {
	gen := &MockQuestionGenerator{GenerateQuestionFunc: func(ctx context.Context, prompt string) (string, error) {
		return "  Derive the update rule.  ", nil
	}}
	b := &browser{t: t, app: setupApp(t, gen)}
	catalog := syllabus.Default()

	var state dto.PaperStateResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	assert.Equal(t, "selection", state.Page)
	assert.Empty(t, state.Questions)
	require.NotEmpty(t, b.cookie)

	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/topics/toggle", `{"topic":"Backpropagation"}`, &state))
	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/topics/toggle", `{"topic":"SGD Recap"}`, &state))
	require.Len(t, state.SelectedTopics, 2)
	assert.Equal(t, "Backpropagation", state.SelectedTopics[0].Name)

	var syllabusResp dto.SyllabusResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/syllabus", "", &syllabusResp))
	require.Len(t, syllabusResp.Units, 2)
	assert.Equal(t, "UNIT-I", syllabusResp.Units[0].Name)
	assert.Len(t, syllabusResp.Units[0].Topics, 10)

	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/questions/generate", "", &state))
	assert.Equal(t, "review", state.Page)
	require.Len(t, state.Questions, 2)
	assert.Equal(t, catalog.QuestionText("Backpropagation"), state.Questions[0].Text)
	assert.Equal(t, "Hard", state.Questions[0].Difficulty)
	assert.Equal(t, 10, state.TotalMarks)

	firstID := state.Questions[0].ID
	require.Equal(t, http.StatusOK, b.json(http.MethodPatch, "/api/questions/"+firstID, `{"marks":"12abc","text":"Explain backprop."}`, &state))
	assert.Equal(t, 12, state.Questions[0].Marks)
	assert.Equal(t, "Explain backprop.", state.Questions[0].Text)
	assert.Equal(t, 17, state.TotalMarks)

	require.Equal(t, http.StatusOK, b.json(http.MethodPatch, "/api/questions/"+firstID, `{"marks":-4}`, &state))
	assert.Equal(t, 0, state.Questions[0].Marks)

	require.Equal(t, http.StatusOK, b.json(http.MethodPatch, "/api/questions/"+firstID, `{"marks":1e2}`, &state))
	assert.Equal(t, 100, state.Questions[0].Marks)
	require.Equal(t, http.StatusOK, b.json(http.MethodPatch, "/api/questions/"+firstID, `{"marks":0}`, &state))

	var blank dto.QuestionResponse
	require.Equal(t, http.StatusCreated, b.json(http.MethodPost, "/api/questions", "", &blank))
	assert.Equal(t, "New Question", blank.Text)
	assert.Equal(t, "N/A", blank.Difficulty)
	assert.Equal(t, 5, blank.Marks)
	assert.Equal(t, 3, blank.Number)

	var ai dto.QuestionResponse
	require.Equal(t, http.StatusCreated, b.json(http.MethodPost, "/api/questions/ai", "", &ai))
	assert.Equal(t, "Derive the update rule.", ai.Text)
	assert.Equal(t, "Backpropagation", ai.Topic)
	assert.Equal(t, 4, ai.Number)

	require.Equal(t, http.StatusOK, b.json(http.MethodDelete, "/api/questions/"+blank.ID, "", &state))
	assert.Len(t, state.Questions, 3)

	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/paper/finalize", "", &state))
	assert.Equal(t, "paper", state.Page)

	var transcript dto.TranscriptResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper/transcript", "", &transcript))
	assert.True(t, strings.HasPrefix(transcript.Transcript, "Title: Question Paper\nSubtitle: Machine Learning (Advanced Deep Learning)\nMax. Marks: 10\n\n1. Explain backprop. [0 Marks]"))

	resp := b.do(http.MethodGet, "/api/paper/print", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	var copied dto.CopyResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/paper/copy", `{"clipboard_api":true}`, &copied))
	assert.True(t, copied.Copied)
	assert.Equal(t, "Copied to clipboard!", copied.Notice)
	assert.Equal(t, int64(2000), copied.NoticeTTL)
	require.NotNil(t, copied.Clipboard)
	assert.False(t, copied.Clipboard.Legacy)
	assert.Equal(t, transcript.Transcript, copied.Clipboard.Text)

	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/paper/reset", "", &state))
	assert.Equal(t, "selection", state.Page)
	assert.Len(t, state.SelectedTopics, 2, "selection survives a paper reset")
	assert.Len(t, state.Questions, 3)

	oldCookie := b.cookie
	require.Equal(t, http.StatusOK, b.json(http.MethodDelete, "/api/session", "", &state))
	assert.NotEqual(t, oldCookie, b.cookie)
	assert.Empty(t, state.SelectedTopics)
	assert.Empty(t, state.Questions)
}

func TestAPI_Errors(t *testing.T) {
	b := &browser{t: t, app: setupApp(t, &MockQuestionGenerator{})}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"generate without topics", http.MethodPost, "/api/questions/generate", "", http.StatusUnprocessableEntity, "NO_TOPICS_SELECTED"},
		{"ai without topics", http.MethodPost, "/api/questions/ai", "", http.StatusUnprocessableEntity, "NO_TOPICS_SELECTED"},
		{"finalize from selection", http.MethodPost, "/api/paper/finalize", "", http.StatusConflict, "INVALID_TRANSITION"},
		{"reset from selection", http.MethodPost, "/api/paper/reset", "", http.StatusConflict, "INVALID_TRANSITION"},
		{"unknown topic", http.MethodPost, "/api/topics/toggle", `{"topic":"Quantum Computing"}`, http.StatusNotFound, "UNKNOWN_TOPIC"},
		{"blank topic", http.MethodPost, "/api/topics/toggle", `{"topic":" "}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed body", http.MethodPost, "/api/topics/toggle", `{"topic":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad question id", http.MethodPatch, "/api/questions/q1", `{"marks":3}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"empty update", http.MethodPatch, "/api/questions/01J0Z8Q3V6M3T5W1B2C4D6E8F0", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body dto.ErrorResponse
			assert.Equal(t, tt.wantStatus, b.json(tt.method, tt.target, tt.body, &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestAPI_UnknownQuestionIDIsIgnored(t *testing.T) {
	b := &browser{t: t, app: setupApp(t, &MockQuestionGenerator{})}
	var state dto.PaperStateResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/topics/toggle", `{"topic":"SGD Recap"}`, &state))
	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/questions/generate", "", &state))

	unknown := "01J0Z8Q3V6M3T5W1B2C4D6E8F0"
	require.Equal(t, http.StatusOK, b.json(http.MethodPatch, "/api/questions/"+unknown, `{"marks":9}`, &state))
	require.Equal(t, http.StatusOK, b.json(http.MethodDelete, "/api/questions/"+unknown, "", &state))
	require.Len(t, state.Questions, 1)
	assert.Equal(t, 5, state.Questions[0].Marks)
}

func TestAPI_GenerationFailureFallsBack(t *testing.T) {
	gen := &MockQuestionGenerator{GenerateQuestionFunc: func(ctx context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, `"Batch Normalization"`)
		return "", errors.New("503 Service Unavailable")
	}}
	b := &browser{t: t, app: setupApp(t, gen)}

	var state dto.PaperStateResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodPost, "/api/topics/toggle", `{"topic":"Batch Normalization"}`, &state))

	var q dto.QuestionResponse
	require.Equal(t, http.StatusCreated, b.json(http.MethodPost, "/api/questions/ai", "", &q))
	assert.Equal(t, `Could not generate a question for "Batch Normalization". Please write your own.`, q.Text)
	assert.Equal(t, 5, q.Marks)

	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	assert.Equal(t, "selection", state.Page, "AI generation does not change the page")
	assert.Len(t, state.Questions, 1)
}

func TestPages_FullFlow(t *testing.T) {
	gen := &MockQuestionGenerator{GenerateQuestionFunc: func(ctx context.Context, prompt string) (string, error) {
		return "Generated question", nil
	}}
	b := &browser{t: t, app: setupApp(t, gen)}

	html := b.page()
	assert.Contains(t, html, "Select Syllabus Topics")
	require.NotEmpty(t, b.cookie)

	resp := b.form("/questions/ai", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.Contains(t, b.page(), "Please select at least one topic to generate an AI question.")
	assert.NotContains(t, b.page(), "Please select at least one topic", "notices are shown once")

	b.form("/topics/toggle", url.Values{"topic": {"Backpropagation"}})
	assert.Contains(t, b.page(), `data-topic="Backpropagation" aria-pressed="true"`)

	b.form("/paper/finalize", url.Values{})
	assert.Contains(t, b.page(), "cannot finalize the paper from the selection page")

	b.form("/questions/generate", url.Values{})
	html = b.page()
	assert.Contains(t, html, "Review &amp; Edit Questions")
	assert.Contains(t, html, "Total Marks: 5")

	b.form("/questions/ai", url.Values{})
	b.form("/questions/blank", url.Values{})
	html = b.page()
	assert.Contains(t, html, "Generated question")
	assert.Contains(t, html, "New Question")
	assert.Contains(t, html, "Total Marks: 15")

	b.form("/paper/finalize", url.Values{})
	html = b.page()
	assert.Contains(t, html, "Final Question Paper")
	assert.Contains(t, html, "Max. Marks: 15")

	b.form("/paper/copy", url.Values{"clipboard_api": {"0"}})
	html = b.page()
	assert.Contains(t, html, "Copied to clipboard!")
	assert.Contains(t, html, "data-legacy-copy")

	resp = b.do(http.MethodGet, "/paper/print", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "window.print()")
	assert.Contains(t, string(doc), "3. New Question")

	b.form("/paper/reset", url.Values{})
	html = b.page()
	assert.Contains(t, html, "Select Syllabus Topics")
	assert.Contains(t, html, `data-topic="Backpropagation" aria-pressed="true"`)

	old := b.cookie
	b.form("/session/reset", url.Values{})
	assert.NotEqual(t, old, b.cookie)
	assert.Contains(t, b.page(), `data-topic="Backpropagation" aria-pressed="false"`)
}

func TestPages_EditQuestion(t *testing.T) {
	b := &browser{t: t, app: setupApp(t, &MockQuestionGenerator{})}
	b.form("/topics/toggle", url.Values{"topic": {"SGD Recap"}})
	b.form("/questions/generate", url.Values{})

	var state dto.PaperStateResponse
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	id := state.Questions[0].ID

	b.form("/questions/"+id, url.Values{"text": {"Rewritten"}, "marks": {"7.9"}})
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	assert.Equal(t, "Rewritten", state.Questions[0].Text)
	assert.Equal(t, 7, state.Questions[0].Marks)

	long := strings.Repeat("x", 5001)
	resp := b.form("/questions/"+id, url.Values{"text": {long}, "marks": {"9"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, b.page(), "exceeds maximum length of 5000")
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	assert.Equal(t, "Rewritten", state.Questions[0].Text)
	assert.Equal(t, 7, state.Questions[0].Marks, "rejected form leaves marks untouched too")

	b.form("/questions/"+id+"/delete", url.Values{})
	require.Equal(t, http.StatusOK, b.json(http.MethodGet, "/api/paper", "", &state))
	assert.Empty(t, state.Questions)
	assert.Equal(t, "review", state.Page)
}

func TestStaticAssets(t *testing.T) {
	app := setupApp(t, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, middleware.SessionCookie, c.Name, "static files do not start sessions")
	}
}

// healthCache is a domain.Cache whose Ping result is fixed.
type healthCache struct {
	pingErr error
}

func (h healthCache) Get(ctx context.Context, key string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (h healthCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (h healthCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return domain.ErrCacheMiss
}

func (h healthCache) Delete(ctx context.Context, key string) error { return nil }

func (h healthCache) Ping(ctx context.Context) error { return h.pingErr }

func TestAPI_Health(t *testing.T) {
	tests := []struct {
		name       string
		opts       []session.Option
		wantStatus int
		wantCache  string
	}{
		{"memory only", nil, http.StatusOK, "disabled"},
		{"cache reachable", []session.Option{session.WithCache(healthCache{})}, http.StatusOK, "ok"},
		{"cache down", []session.Option{session.WithCache(healthCache{pingErr: errors.New("connection refused")})}, http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t, nil, tt.opts...)
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			for _, c := range resp.Cookies() {
				assert.NotEqual(t, middleware.SessionCookie, c.Name)
			}

			var body dto.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCache, body.Cache)
			assert.Equal(t, 0, body.Sessions)
		})
	}
}
