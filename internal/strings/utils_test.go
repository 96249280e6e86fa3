package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "math", 10, "math"},
		{"exactly at limit", "physics", 7, "physics"},
		{"over limit", "computer science", 10, "compute..."},
		{"tiny limit clamped", "algebra", 2, "a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "Қазақ...", TruncateRunes("Қазақ тілі сабағы", 8))
	assert.Equal(t, "short", TruncateRunes("short", 10))
}

func TestWordWrap(t *testing.T) {
	in := "experienced tutor offering algebra and geometry lessons"
	out := WordWrap(in, 20)

	for _, line := range splitLines(out) {
		assert.LessOrEqual(t, visibleLength(line), 20)
	}
}

func TestWordWrapPreservesNewlines(t *testing.T) {
	in := "line one\n\nline three"
	assert.Equal(t, in, WordWrap(in, 40))
}

func TestWordWrapZeroWidth(t *testing.T) {
	assert.Equal(t, "unchanged", WordWrap("unchanged", 0))
}

func TestVisibleLength(t *testing.T) {
	assert.Equal(t, 5, visibleLength("\x1b[31mhello\x1b[0m"))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
