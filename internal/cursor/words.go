// Package cursor tracks a line, word and character position over the lines
// of one note.
package cursor

import "unicode"

// Word is a maximal run of non-whitespace runes in a line.
// Start and End are rune offsets; End is exclusive.
type Word struct {
	Start int
	End   int
}

// Contains reports whether char falls inside the word.
func (w Word) Contains(char int) bool {
	return char >= w.Start && char < w.End
}

// Len returns the word length in runes.
func (w Word) Len() int {
	return w.End - w.Start
}

// Text returns the word's substring of line.
func (w Word) Text(line string) string {
	runes := []rune(line)
	if w.Start < 0 || w.End > len(runes) || w.Start >= w.End {
		return ""
	}
	return string(runes[w.Start:w.End])
}

// IsSpace reports whether r separates words. The information separators
// U+001C through U+001F count as whitespace along with unicode.IsSpace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Words splits line into words, scanning left to right.
func Words(line string) []Word {
	var words []Word
	start := -1
	i := 0
	for _, r := range line {
		if IsSpace(r) {
			if start >= 0 {
				words = append(words, Word{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i++
	}
	if start >= 0 {
		words = append(words, Word{Start: start, End: i})
	}
	return words
}

// WordIndexFor returns the index of the word containing char. When char is on
// whitespace it returns the last word, and 0 when the line has no words.
func WordIndexFor(line string, char int) int {
	words := Words(line)
	for i, w := range words {
		if w.Contains(char) {
			return i
		}
	}
	if len(words) == 0 {
		return 0
	}
	return len(words) - 1
}

// WordStartFor returns the start offset of word, or 0 if it does not exist.
func WordStartFor(line string, word int) int {
	words := Words(line)
	if word < 0 || word >= len(words) {
		return 0
	}
	return words[word].Start
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
