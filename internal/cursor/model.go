package cursor

import "strings"

// Position is a snapshot of the cursor within the loaded lines.
type Position struct {
	Line int
	Char int
	Word int
}

// Model holds the line, char and word indices for one note. The zero value
// is an empty model. Char and word are only changed together so they never
// disagree about the current line.
type Model struct {
	lines []string
	line  int
	char  int
	word  int
}

// New returns a model positioned at the start of lines.
func New(lines []string) *Model {
	m := &Model{}
	m.SetLines(lines)
	return m
}

// SetLines replaces the loaded lines and moves to the first line.
func (m *Model) SetLines(lines []string) {
	m.lines = append([]string(nil), lines...)
	m.SetLine(0)
}

// Lines returns the loaded lines.
func (m *Model) Lines() []string {
	return m.lines
}

// LineCount returns the number of loaded lines.
func (m *Model) LineCount() int {
	return len(m.lines)
}

// SetLine moves to line i, clamped, and resets char and word to 0.
func (m *Model) SetLine(i int) {
	m.line = clamp(i, 0, len(m.lines)-1)
	m.char = 0
	m.word = 0
}

// NextLine moves down one line. It returns false at the last line.
func (m *Model) NextLine() bool {
	return m.stepLine(1)
}

// PreviousLine moves up one line. It returns false at the first line.
func (m *Model) PreviousLine() bool {
	return m.stepLine(-1)
}

func (m *Model) stepLine(delta int) bool {
	target := clamp(m.line+delta, 0, len(m.lines)-1)
	if target == m.line {
		return false
	}
	m.SetLine(target)
	return true
}

// NextChar moves right one character and re-derives the word.
func (m *Model) NextChar() bool {
	return m.stepChar(1)
}

// PreviousChar moves left one character and re-derives the word.
func (m *Model) PreviousChar() bool {
	return m.stepChar(-1)
}

func (m *Model) stepChar(delta int) bool {
	line := m.rawLine()
	n := len([]rune(line))
	target := clamp(m.char+delta, 0, n-1)
	moved := target != m.char
	m.char = target
	m.word = WordIndexFor(line, m.char)
	return moved
}

// NextWord moves to the next word and puts char at its start.
func (m *Model) NextWord() bool {
	return m.stepWord(1)
}

// PreviousWord moves to the previous word and puts char at its start.
func (m *Model) PreviousWord() bool {
	return m.stepWord(-1)
}

func (m *Model) stepWord(delta int) bool {
	line := m.rawLine()
	count := len(Words(line))
	if count == 0 {
		return false
	}
	target := clamp(m.word+delta, 0, count-1)
	if target == m.word {
		return false
	}
	m.word = target
	m.char = WordStartFor(line, m.word)
	return true
}

// CurrentLineText returns the active line without a trailing newline.
func (m *Model) CurrentLineText() string {
	return strings.TrimRight(m.rawLine(), "\r\n")
}

// CurrentWordText returns the active word, or "" if the line has no words.
func (m *Model) CurrentWordText() string {
	line := m.rawLine()
	words := Words(line)
	if m.word >= len(words) {
		return ""
	}
	return words[m.word].Text(line)
}

// CurrentCharText returns the character under the cursor, or "" on an empty line.
func (m *Model) CurrentCharText() string {
	runes := []rune(m.rawLine())
	if m.char >= len(runes) {
		return ""
	}
	return string(runes[m.char])
}

// CurrentWord returns the active word's bounds.
func (m *Model) CurrentWord() (Word, bool) {
	words := Words(m.rawLine())
	if m.word >= len(words) {
		return Word{}, false
	}
	return words[m.word], true
}

// Position returns the current indices.
func (m *Model) Position() Position {
	return Position{Line: m.line, Char: m.char, Word: m.word}
}

// Valid reports whether every index is within bounds of what it points into,
// or 0 when that sequence is empty.
func (m *Model) Valid() bool {
	if len(m.lines) == 0 {
		return m.line == 0 && m.char == 0 && m.word == 0
	}
	if m.line < 0 || m.line >= len(m.lines) {
		return false
	}
	line := m.lines[m.line]
	n := len([]rune(line))
	if n == 0 {
		if m.char != 0 {
			return false
		}
	} else if m.char < 0 || m.char >= n {
		return false
	}
	wc := len(Words(line))
	if wc == 0 {
		return m.word == 0
	}
	return m.word >= 0 && m.word < wc
}

func (m *Model) rawLine() string {
	if m.line < 0 || m.line >= len(m.lines) {
		return ""
	}
	return m.lines[m.line]
}
