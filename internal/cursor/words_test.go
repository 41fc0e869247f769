package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Word
	}{
		{"two spaces between", "hello world  foo", []Word{{0, 5}, {6, 11}, {13, 16}}},
		{"empty", "", nil},
		{"only whitespace", " \t  ", nil},
		{"leading and trailing", "  a b  ", []Word{{2, 3}, {4, 5}}},
		{"tabs and newline", "x\ty\n", []Word{{0, 1}, {2, 3}}},
		{"multibyte runes", "héllo wörld", []Word{{0, 5}, {6, 11}}},
		{"non-breaking space separates", "a b", []Word{{0, 1}, {2, 3}}},
		{"punctuation is part of word", "end. next,", []Word{{0, 4}, {5, 10}}},
		{"information separators", "a\x1cb\x1fc", []Word{{0, 1}, {2, 3}, {4, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.line))
		})
	}
}

func TestWordText(t *testing.T) {
	line := "héllo wörld"
	words := Words(line)
	assert.Equal(t, "héllo", words[0].Text(line))
	assert.Equal(t, "wörld", words[1].Text(line))
	assert.Equal(t, 5, words[1].Len())
	assert.Equal(t, "", Word{Start: 3, End: 99}.Text(line))
}

func TestWordIndexFor(t *testing.T) {
	line := "hello world  foo  "
	tests := []struct {
		char int
		want int
	}{
		{0, 0},
		{4, 0},
		{5, 2}, // whitespace falls back to the last word
		{6, 1},
		{10, 1},
		{12, 2},
		{13, 2},
		{15, 2},
		{17, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WordIndexFor(line, tt.char), "char %d", tt.char)
	}

	assert.Equal(t, 0, WordIndexFor("", 0))
	assert.Equal(t, 0, WordIndexFor("    ", 2))
}

func TestWordIndexForContainsOrLast(t *testing.T) {
	lines := []string{"hello world  foo", "  lead", "trail   ", "a b c d e", "", "  "}
	for _, line := range lines {
		words := Words(line)
		for char := 0; char < len([]rune(line)); char++ {
			idx := WordIndexFor(line, char)
			if len(words) == 0 {
				assert.Equal(t, 0, idx)
				continue
			}
			if words[idx].Contains(char) {
				continue
			}
			assert.Equal(t, len(words)-1, idx, "line %q char %d", line, char)
			for _, w := range words {
				assert.False(t, w.Contains(char))
			}
		}
	}
}

func TestWordStartFor(t *testing.T) {
	line := "hello world  foo"
	assert.Equal(t, 0, WordStartFor(line, 0))
	assert.Equal(t, 6, WordStartFor(line, 1))
	assert.Equal(t, 13, WordStartFor(line, 2))
	assert.Equal(t, 0, WordStartFor(line, 3))
	assert.Equal(t, 0, WordStartFor(line, -1))
	assert.Equal(t, 0, WordStartFor("", 0))
}
