package paper

import "question-paper/internal/domain"

// Snapshot is the serializable state of a Workspace. The in-flight
// generation flag is not part of it.
type Snapshot struct {
	Page      domain.Page       `json:"page"`
	Selected  []domain.Topic    `json:"selected"`
	Questions []domain.Question `json:"questions"`
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Page:      w.page,
		Selected:  append([]domain.Topic(nil), w.selected...),
		Questions: append([]domain.Question(nil), w.questions...),
	}
}

// Restore replaces the workspace state with s. Selected topics that are no
// longer in the catalog are dropped; an unknown page restarts at Selection.
func (w *Workspace) Restore(s Snapshot) {
	selected := make([]domain.Topic, 0, len(s.Selected))
	for _, t := range s.Selected {
		if topic, ok := w.catalog.Topic(t.Name); ok {
			selected = append(selected, topic)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch s.Page {
	case domain.PageSelection, domain.PageReview, domain.PagePaper:
		w.page = s.Page
	default:
		w.page = domain.PageSelection
	}
	w.selected = selected
	w.questions = append([]domain.Question(nil), s.Questions...)
}
