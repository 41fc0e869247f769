package views

import (
	"strings"
	"testing"

	"invisinote/pkg/testutils"
	"invisinote/pkg/types"

	"github.com/stretchr/testify/assert"
)

// Mock model for testing
type mockModel struct {
	mode      types.Mode
	showHelp  bool
	width     int
	folder    string
	notes     []types.NoteFile
	lines     []string
	pos       types.Position
	announce  string
	announceF bool
}

func (m *mockModel) Mode() types.Mode     { return m.mode }
func (m *mockModel) ShowHelp() bool       { return m.showHelp }
func (m *mockModel) Width() int           { return m.width }
func (m *mockModel) ActiveFolder() string { return m.folder }
func (m *mockModel) NoteCount() int       { return len(m.notes) }
func (m *mockModel) Lines() []string      { return m.lines }
func (m *mockModel) Position() types.Position {
	return m.pos
}
func (m *mockModel) Announcement() string     { return m.announce }
func (m *mockModel) AnnouncementFailed() bool { return m.announceF }
func (m *mockModel) CurrentNote() (types.NoteFile, bool) {
	if len(m.notes) == 0 {
		return types.NoteFile{}, false
	}
	return m.notes[m.pos.Note], true
}

func TestRenderMainView(t *testing.T) {
	tests := []struct {
		name     string
		model    *mockModel
		help     string
		contains []string // Strings that should be present in the output
		excludes []string // Strings that should not be present in the output
	}{
		{
			name:  "nothing loaded",
			model: &mockModel{width: 80},
			contains: []string{
				"invisinote",
				"Folder: (no folder)",
				"Note:   (no note)",
				"(no lines)",
				"NORMAL  line -/0",
			},
		},
		{
			name: "note loaded",
			model: &mockModel{
				width:  80,
				folder: "/home/me/notes",
				notes: []types.NoteFile{
					{Path: "/home/me/notes/a.txt", Name: "a.txt"},
					{Path: "/home/me/notes/b.txt", Name: "b.txt"},
				},
				lines:    []string{"hello world  foo", "second line"},
				pos:      types.Position{Note: 1, Line: 0, Word: 1, Char: 6},
				announce: "b.txt",
			},
			help: "? help",
			contains: []string{
				"Folder: /home/me/notes",
				"Note:   b.txt (2/2)",
				"> hello world  foo",
				"  second line",
				"line 1/2  word 2  char 7",
				"b.txt",
				"? help",
			},
			excludes: []string{"(no lines)"},
		},
		{
			name: "failed announcement",
			model: &mockModel{
				width:     80,
				folder:    "/gone",
				announce:  "Folder not available",
				announceF: true,
			},
			contains: []string{"Folder not available", "Folder: /gone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := testutils.StripANSI(RenderMainView(tt.model, tt.help))
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestRenderLongLineKeepsCursorVisible(t *testing.T) {
	long := strings.Repeat("a", 100) + " target " + strings.Repeat("b", 100)
	m := &mockModel{
		width: 40,
		notes: []types.NoteFile{{Name: "long.txt"}},
		lines: []string{long},
		pos:   types.Position{Word: 1, Char: 101},
	}
	output := testutils.StripANSI(RenderMainView(m, ""))
	assert.Contains(t, output, "target")
}

func TestRenderManyLinesWindow(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line " + string(rune('A'+i))
	}
	m := &mockModel{
		width: 80,
		notes: []types.NoteFile{{Name: "n.txt"}},
		lines: lines,
		pos:   types.Position{Line: 20},
	}
	output := testutils.StripANSI(RenderMainView(m, ""))
	assert.Contains(t, output, "> line "+string(rune('A'+20)))
	assert.NotContains(t, output, "line A\n")
	assert.Contains(t, output, "line 21/30")
}
