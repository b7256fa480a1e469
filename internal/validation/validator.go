package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"question-paper/internal/domain"
)

const (
	// MaxTopicNameLength bounds topic names accepted from requests.
	MaxTopicNameLength = 200
	// MaxQuestionTextLength bounds edited question text.
	MaxQuestionTextLength = 5000
)

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator checks request input before it reaches the workspace.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopicName requires a non-blank topic name of bounded length.
// Whether the topic exists is decided by the catalog.
func (v *Validator) ValidateTopicName(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if utf8.RuneCountInString(name) > MaxTopicNameLength {
		errors = append(errors, domain.NewTooLongError("topic", MaxTopicNameLength))
	}
	return errors
}

// ValidateQuestionID requires a ULID.
func (v *Validator) ValidateQuestionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

// ValidateQuestionUpdate requires at least one of text and marks. Marks
// are free-form: unparsable input becomes 0 rather than an error.
func (v *Validator) ValidateQuestionUpdate(text, marks *string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if text == nil && marks == nil {
		errors = append(errors, domain.NewMissingFieldError("text or marks"))
		return errors
	}
	if text != nil && utf8.RuneCountInString(*text) > MaxQuestionTextLength {
		errors = append(errors, domain.NewTooLongError("text", MaxQuestionTextLength))
	}
	return errors
}

// isValidULID checks the 26 character Crockford base32 form.
func isValidULID(s string) bool {
	return len(s) == 26 && validULID.MatchString(s)
}
