package syllabus

import (
	"testing"

	"question-paper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	units := c.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "UNIT-I", units[0].Name)
	assert.Equal(t, "UNIT-II", units[1].Name)
	assert.Len(t, units[0].Topics, 10)
	assert.Len(t, units[1].Topics, 10)
	assert.Equal(t, "Diagrammatic representation Logistic Regression and Perceptron", units[0].Topics[0].Name)

	topic, ok := c.Topic("Backpropagation")
	require.True(t, ok)
	assert.Equal(t, domain.DifficultyHard, topic.Difficulty)

	topic, ok = c.Topic("Dropout layers & Regularization")
	require.True(t, ok)
	assert.Equal(t, domain.DifficultyMedium, topic.Difficulty)
}

func TestDefault_EveryTopicHasTemplate(t *testing.T) {
	c := Default()
	for _, u := range c.Units() {
		for _, topic := range u.Topics {
			text := c.QuestionText(topic.Name)
			assert.NotEqual(t, FallbackQuestion(topic.Name), text, topic.Name)
			assert.NotEmpty(t, text, topic.Name)
		}
	}
	assert.Equal(t,
		`What does "memorization" refer to in the context of training an MLP? How can it be prevented?`,
		c.QuestionText("Training an MLP Memorization"))
}

func TestQuestionText_Fallback(t *testing.T) {
	c, err := Load([]byte(`
units:
  - name: U1
    topics:
      - name: Attention
        difficulty: hard
`))
	require.NoError(t, err)
	assert.Equal(t, "Write a question about: Attention", c.QuestionText("Attention"))
}

func TestUnits_ReturnsCopy(t *testing.T) {
	c := Default()
	units := c.Units()
	units[0].Topics[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.Units()[0].Topics[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate topic",
			doc: `
units:
  - name: U1
    topics:
      - {name: A, difficulty: Easy}
  - name: U2
    topics:
      - {name: A, difficulty: Hard}
`,
		},
		{
			name: "unknown difficulty",
			doc: `
units:
  - name: U1
    topics:
      - {name: A, difficulty: Brutal}
`,
		},
		{
			name: "topic difficulty N/A",
			doc: `
units:
  - name: U1
    topics:
      - {name: A, difficulty: N/A}
`,
		},
		{
			name: "unnamed unit",
			doc: `
units:
  - topics:
      - {name: A, difficulty: Easy}
`,
		},
		{
			name: "malformed yaml",
			doc:  "units: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
