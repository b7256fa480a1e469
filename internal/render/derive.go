package render

import (
	"fmt"
	"strings"

	"question-paper/internal/domain"
)

// TotalMarks sums the marks of all questions.
func TotalMarks(questions []domain.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Marks
	}
	return total
}

// Transcript renders the plain-text form of the paper copied to the clipboard.
func Transcript(questions []domain.Question, meta domain.PaperMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\nSubtitle: %s\nMax. Marks: %d\n\n", meta.Title, meta.Subtitle, TotalMarks(questions))
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. %s [%d Marks]", i+1, q.Text, q.Marks)
	}
	return b.String()
}
