package paper

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultMarks is the mark value given to every new question.
const DefaultMarks = 5

// ParseMarks reads an integer mark value the way a browser number field is
// read: leading whitespace, an optional sign, then the leading run of
// digits. Anything unparseable, out of range or negative yields 0.
func ParseMarks(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
