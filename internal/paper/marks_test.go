package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarks(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"7", 7},
		{"abc", 0},
		{"", 0},
		{"  12", 12},
		{"10 marks", 10},
		{"3.9", 3},
		{"+4", 4},
		{"-3", 0},
		{"-", 0},
		{"0", 0},
		{"007", 7},
		{"99999999999999999999999", 0},
		{"\t\n8", 8},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarks(tt.raw))
		})
	}
}
