package domain

import "strings"

// Difficulty is the difficulty tag carried by syllabus topics and questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	// DifficultyNA marks questions that were not derived from a topic.
	DifficultyNA Difficulty = "N/A"
)

// ParseDifficulty converts a case-insensitive difficulty name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	case "n/a":
		return DifficultyNA, true
	default:
		return "", false
	}
}

// Topic is a syllabus entry. Its name is its identity within the catalog.
type Topic struct {
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
}

// Validate validates the topic
func (t Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("topic name is required")
	}
	switch t.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	default:
		return NewValidationError("topic " + t.Name + " has invalid difficulty " + string(t.Difficulty))
	}
}

// Unit groups syllabus topics under a heading such as "UNIT-I".
type Unit struct {
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// Question is an editable exam item.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Topic      string     `json:"topic,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Marks      int        `json:"marks"`
}

// HasTopic reports whether the question references a syllabus topic.
// Blank questions do not.
func (q Question) HasTopic() bool {
	return q.Topic != ""
}

// Page is one of the three views the builder moves through.
type Page string

const (
	PageSelection Page = "selection"
	PageReview    Page = "review"
	PagePaper     Page = "paper"
)

// PaperMetadata holds the static header of a question paper.
type PaperMetadata struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Duration string `json:"duration"`
}

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}
