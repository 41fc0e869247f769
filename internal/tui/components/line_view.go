package components

import (
	"strings"

	"invisinote/internal/cursor"
	"invisinote/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// LineView renders a window of note lines with the cursor line marked and the
// active word and character highlighted.
type LineView struct {
	lines  []string
	line   int
	word   int
	char   int
	width  int
	height int
}

func NewLineView() *LineView {
	return &LineView{width: 80, height: 10}
}

// SetLines replaces the lines and cursor.
func (lv *LineView) SetLines(lines []string, line, word, char int) {
	lv.lines = lines
	lv.line = line
	lv.word = word
	lv.char = char
}

// SetSize sets the width in cells and the number of visible lines.
func (lv *LineView) SetSize(width, height int) {
	if width > 0 {
		lv.width = width
	}
	if height > 0 {
		lv.height = height
	}
}

func (lv *LineView) View() string {
	if len(lv.lines) == 0 {
		return styles.Theme.Unselected.Render("(no lines)")
	}

	start, end := window(len(lv.lines), lv.line, lv.height)
	var sb strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteByte('\n')
		}
		if i == lv.line {
			sb.WriteString(styles.Theme.Selected.Render("> "))
			sb.WriteString(lv.renderCursorLine(lv.lines[i]))
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(styles.Theme.Unselected.Render(Truncate(lv.lines[i], lv.width-2)))
	}
	return sb.String()
}

// window returns the visible line range keeping current inside it.
func window(total, current, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := current - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func (lv *LineView) renderCursorLine(line string) string {
	runes := displayRunes(line)
	from, to := visibleSpan(runes, lv.char, lv.width-2)

	var wordSpan cursor.Word
	words := cursor.Words(line)
	hasWord := lv.word >= 0 && lv.word < len(words)
	if hasWord {
		wordSpan = words[lv.word]
	}

	var sb strings.Builder
	var run []rune
	var runStyle *lipgloss.Style
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			sb.WriteString(string(run))
		} else {
			sb.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for i := from; i < to; i++ {
		var style *lipgloss.Style
		switch {
		case i == lv.char:
			style = &styles.Theme.Char
		case hasWord && wordSpan.Contains(i):
			style = &styles.Theme.Word
		}
		if style != runStyle {
			flush()
			runStyle = style
		}
		run = append(run, runes[i])
	}
	flush()
	return sb.String()
}

// displayRunes swaps tabs for spaces so every rune occupies a cell.
func displayRunes(line string) []rune {
	runes := []rune(strings.TrimRight(line, "\r\n"))
	for i, r := range runes {
		if r == '\t' {
			runes[i] = ' '
		}
	}
	return runes
}

// visibleSpan picks the rune range that fits in width cells around char,
// keeping up to half the width of context before it.
func visibleSpan(runes []rune, char, width int) (int, int) {
	if width <= 0 || runewidth.StringWidth(string(runes)) <= width {
		return 0, len(runes)
	}
	if char >= len(runes) {
		char = len(runes) - 1
	}
	if char < 0 {
		char = 0
	}

	from, to := char, char
	used := 0
	for from > 0 && used+runewidth.RuneWidth(runes[from-1]) <= width/2 {
		from--
		used += runewidth.RuneWidth(runes[from])
	}
	for to < len(runes) && used+runewidth.RuneWidth(runes[to]) <= width {
		used += runewidth.RuneWidth(runes[to])
		to++
	}
	// Near the end of the line, spend the leftover width on the left
	for from > 0 && used+runewidth.RuneWidth(runes[from-1]) <= width {
		from--
		used += runewidth.RuneWidth(runes[from])
	}
	return from, to
}

// Truncate shortens s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	s = string(displayRunes(s))
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
