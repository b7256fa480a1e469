// Package paper implements the question paper state machine: the selected
// topics, the working question list and the current page, mutated only
// through the Workspace operations.
package paper

import (
	"context"
	"math/rand/v2"
	"sync"

	"question-paper/internal/domain"
	"question-paper/internal/util"

	"go.uber.org/zap"
)

// BlankQuestionText is the placeholder text of a question added by hand.
const BlankQuestionText = "New Question"

// TopicCatalog resolves topic names and their template questions.
type TopicCatalog interface {
	Topic(name string) (domain.Topic, bool)
	QuestionText(name string) string
}

// Generator produces question text for a topic and never fails.
// *generation.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, topic domain.Topic) string
	Loading() bool
}

// RandomSource picks the topic for AI generation. *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures a Workspace.
type Option func(*Workspace)

// WithRandom replaces the random source used by AddAIQuestion.
func WithRandom(r RandomSource) Option {
	return func(w *Workspace) { w.rnd = r }
}

// WithIDs replaces the question id source.
func WithIDs(next func() string) Option {
	return func(w *Workspace) { w.newID = next }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workspace) { w.logger = l }
}

// Workspace is the state container for one paper being built.
// It is safe for concurrent use.
type Workspace struct {
	catalog TopicCatalog
	gen     Generator
	rnd     RandomSource
	newID   func() string
	logger  *zap.Logger

	mu         sync.Mutex
	page       domain.Page
	selected   []domain.Topic
	questions  []domain.Question
	generating bool
}

// NewWorkspace creates an empty workspace on the Selection page.
func NewWorkspace(catalog TopicCatalog, gen Generator, opts ...Option) *Workspace {
	w := &Workspace{
		catalog: catalog,
		gen:     gen,
		rnd:     globalRand{},
		newID:   util.NewULID,
		logger:  zap.NewNop(),
		page:    domain.PageSelection,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Page returns the current page.
func (w *Workspace) Page() domain.Page {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page
}

// SelectedTopics returns the selection in insertion order.
func (w *Workspace) SelectedTopics() []domain.Topic {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.Topic(nil), w.selected...)
}

// IsSelected reports whether the named topic is selected.
func (w *Workspace) IsSelected(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexOfTopic(name) >= 0
}

// Questions returns a copy of the working question list.
func (w *Workspace) Questions() []domain.Question {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.Question(nil), w.questions...)
}

// Loading reports whether an AI question is being generated.
func (w *Workspace) Loading() bool {
	w.mu.Lock()
	generating := w.generating
	w.mu.Unlock()
	return generating || (w.gen != nil && w.gen.Loading())
}

// ToggleTopic adds the named topic to the selection or removes it.
func (w *Workspace) ToggleTopic(name string) error {
	topic, ok := w.catalog.Topic(name)
	if !ok {
		return domain.NewUnknownTopicError(name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOfTopic(name); i >= 0 {
		w.selected = append(w.selected[:i:i], w.selected[i+1:]...)
		return nil
	}
	w.selected = append(w.selected, topic)
	return nil
}

// GenerateQuestions replaces the question list with one templated question
// per selected topic and moves to the Review page.
func (w *Workspace) GenerateQuestions() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.page != domain.PageSelection {
		return domain.NewInvalidTransitionError(w.page, "generate questions")
	}
	if len(w.selected) == 0 {
		return domain.NewNoTopicsSelectedError()
	}

	questions := make([]domain.Question, 0, len(w.selected))
	for _, topic := range w.selected {
		questions = append(questions, domain.Question{
			ID:         w.newID(),
			Text:       w.catalog.QuestionText(topic.Name),
			Topic:      topic.Name,
			Difficulty: topic.Difficulty,
			Marks:      DefaultMarks,
		})
	}
	w.questions = questions
	w.page = domain.PageReview
	return nil
}

// AddBlankQuestion appends a placeholder question with no topic.
func (w *Workspace) AddBlankQuestion() domain.Question {
	w.mu.Lock()
	defer w.mu.Unlock()

	q := domain.Question{
		ID:         w.newID(),
		Text:       BlankQuestionText,
		Difficulty: domain.DifficultyNA,
		Marks:      DefaultMarks,
	}
	w.questions = append(w.questions, q)
	return q
}

// AddAIQuestion picks a random selected topic, generates a question for it
// and appends the result. The lock is released while the generator runs,
// so edits made meanwhile are kept and the question is appended to the
// list as it stands when generation finishes.
func (w *Workspace) AddAIQuestion(ctx context.Context) (domain.Question, error) {
	w.mu.Lock()
	if len(w.selected) == 0 {
		w.mu.Unlock()
		w.logger.Warn("AI question requested with no topics selected")
		return domain.Question{}, domain.NewNoTopicsSelectedError()
	}
	if w.generating {
		w.mu.Unlock()
		return domain.Question{}, domain.NewGenerationInProgressError()
	}
	topic := w.selected[w.rnd.IntN(len(w.selected))]
	w.generating = true
	w.mu.Unlock()

	text := w.gen.Generate(context.WithoutCancel(ctx), topic)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.generating = false
	q := domain.Question{
		ID:         w.newID(),
		Text:       text,
		Topic:      topic.Name,
		Difficulty: topic.Difficulty,
		Marks:      DefaultMarks,
	}
	w.questions = append(w.questions, q)
	return q, nil
}

// UpdateQuestionText replaces the text of question id. Unknown ids are ignored.
func (w *Workspace) UpdateQuestionText(id, text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOfQuestion(id); i >= 0 {
		w.questions[i].Text = text
	}
}

// UpdateMarks sets the marks of question id from raw user input, see
// ParseMarks. Unknown ids are ignored.
func (w *Workspace) UpdateMarks(id, raw string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOfQuestion(id); i >= 0 {
		w.questions[i].Marks = ParseMarks(raw)
	}
}

// DeleteQuestion removes question id. Unknown ids are ignored.
func (w *Workspace) DeleteQuestion(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOfQuestion(id); i >= 0 {
		w.questions = append(w.questions[:i:i], w.questions[i+1:]...)
	}
}

// Finalize moves from Review to the Paper page. An empty paper is allowed.
func (w *Workspace) Finalize() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.page != domain.PageReview {
		return domain.NewInvalidTransitionError(w.page, "finalize the paper")
	}
	w.page = domain.PagePaper
	return nil
}

// ResetToSelection moves from the Paper page back to Selection. The
// selection and the question list are kept.
func (w *Workspace) ResetToSelection() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.page != domain.PagePaper {
		return domain.NewInvalidTransitionError(w.page, "start a new paper")
	}
	w.page = domain.PageSelection
	return nil
}

func (w *Workspace) indexOfTopic(name string) int {
	for i, t := range w.selected {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (w *Workspace) indexOfQuestion(id string) int {
	for i, q := range w.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
