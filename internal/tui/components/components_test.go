package components

import (
	"strings"
	"testing"

	"invisinote/pkg/testutils"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name                  string
		total, current, height int
		start, end            int
	}{
		{"fits", 5, 3, 10, 0, 5},
		{"top", 30, 0, 9, 0, 9},
		{"middle", 30, 15, 9, 11, 20},
		{"bottom", 30, 29, 9, 21, 30},
		{"no height", 30, 12, 0, 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.total, tt.current, tt.height)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestVisibleSpan(t *testing.T) {
	short := []rune("short line")
	from, to := visibleSpan(short, 3, 20)
	assert.Equal(t, 0, from)
	assert.Equal(t, len(short), to)

	long := []rune(strings.Repeat("x", 50))
	from, to = visibleSpan(long, 40, 10)
	assert.Equal(t, 35, from)
	assert.Equal(t, 45, to)

	from, to = visibleSpan(long, 49, 10)
	assert.Equal(t, 40, from)
	assert.Equal(t, 50, to)

	wide := []rune("日本語のテキストです")
	from, to = visibleSpan(wide, 9, 6)
	assert.Equal(t, 7, from)
	assert.Equal(t, 10, to)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "a b", Truncate("a\tb", 0))
}

func TestLineViewHighlightsCursor(t *testing.T) {
	lv := NewLineView()
	lv.SetSize(40, 3)
	lv.SetLines([]string{"first", "hello world", "third", "fourth"}, 1, 1, 6)

	out := testutils.StripANSI(lv.View())
	assert.Equal(t, "  first\n> hello world\n  third", out)

	lv.SetLines(nil, 0, 0, 0)
	assert.Equal(t, "(no lines)", testutils.StripANSI(lv.View()))
}

func TestStatusBar(t *testing.T) {
	s := NewStatusBar()
	assert.Equal(t, "", s.View())

	s.SetText("No notes found", true)
	assert.True(t, s.Failed())
	assert.Equal(t, "No notes found", testutils.StripANSI(s.View()))
}

func TestFolderEditor(t *testing.T) {
	fe := NewFolderEditor("/a\n/b")
	assert.Equal(t, "/a\n/b", fe.Value())
	fe.SetValue("/c")
	assert.Equal(t, "/c", fe.Value())
	assert.Contains(t, testutils.StripANSI(fe.View()), "Note folders")
}
