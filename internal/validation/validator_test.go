package validation

import (
	"strings"
	"testing"

	"question-paper/internal/util"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestValidateTopicName(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateTopicName("Backpropagation"))
	assert.Empty(t, v.ValidateTopicName("Not in the syllabus"), "existence is checked elsewhere")

	errs := v.ValidateTopicName("   ")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "topic", errs[0].Field)
	}
	assert.Len(t, v.ValidateTopicName(strings.Repeat("x", MaxTopicNameLength+1)), 1)
}

func TestValidateQuestionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuestionID(util.NewULID()))
	assert.Len(t, v.ValidateQuestionID(""), 1)
	assert.Len(t, v.ValidateQuestionID("q1"), 1)
	assert.Len(t, v.ValidateQuestionID("01HZZZZZZZZZZZZZZZZZZZZZZU"), 1, "U is not Crockford base32")
}

func TestValidateQuestionUpdate(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuestionUpdate(ptr("text"), nil))
	assert.Empty(t, v.ValidateQuestionUpdate(nil, ptr("abc")))
	assert.Empty(t, v.ValidateQuestionUpdate(ptr(""), ptr("")))
	assert.Len(t, v.ValidateQuestionUpdate(nil, nil), 1)
	assert.Len(t, v.ValidateQuestionUpdate(ptr(strings.Repeat("a", MaxQuestionTextLength+1)), nil), 1)
}
