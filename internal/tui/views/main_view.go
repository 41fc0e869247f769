package views

import (
	"fmt"
	"strings"

	"invisinote/internal/tui/components"
	"invisinote/internal/tui/styles"
	"invisinote/pkg/types"
)

// linesShown is how many note lines are visible around the cursor.
const linesShown = 9

// RenderMainView draws the navigator: folder and note headers, the line
// window, the cursor position and the last announcement.
func RenderMainView(m types.ModelReader, help string) string {
	var sb strings.Builder
	width := m.Width()
	if width <= 0 {
		width = 80
	}

	sb.WriteString(renderBanner())
	sb.WriteString("\n")
	sb.WriteString(RenderHeader(m, width))
	sb.WriteString("\n\n")

	lv := components.NewLineView()
	lv.SetSize(width-4, linesShown)
	pos := m.Position()
	lv.SetLines(m.Lines(), pos.Line, pos.Word, pos.Char)
	sb.WriteString(lv.View())
	sb.WriteString("\n\n")

	sb.WriteString(RenderPosition(m))
	sb.WriteString("\n")

	status := components.NewStatusBar()
	status.SetText(components.Truncate(m.Announcement(), width-4), m.AnnouncementFailed())
	sb.WriteString(status.View())
	sb.WriteString("\n")

	if help != "" {
		sb.WriteString("\n" + help)
	}
	return styles.Theme.App.Render(sb.String())
}

// RenderHeader shows the active folder and note.
func RenderHeader(m types.ModelReader, width int) string {
	folder := m.ActiveFolder()
	if folder == "" {
		folder = "(no folder)"
	}
	noteName := "(no note)"
	if note, ok := m.CurrentNote(); ok {
		noteName = fmt.Sprintf("%s (%d/%d)", note.Name, m.Position().Note+1, m.NoteCount())
	}

	var sb strings.Builder
	sb.WriteString(styles.Theme.Label.Render("Folder: "))
	sb.WriteString(components.Truncate(folder, width-12))
	sb.WriteString("\n")
	sb.WriteString(styles.Theme.Label.Render("Note:   "))
	sb.WriteString(components.Truncate(noteName, width-12))
	return sb.String()
}

// RenderPosition shows the line, word and character indices.
func RenderPosition(m types.ModelReader) string {
	pos := m.Position()
	lines := len(m.Lines())
	if lines == 0 {
		return styles.Theme.Help.Render(fmt.Sprintf("%s  line -/0", m.Mode()))
	}
	return styles.Theme.Help.Render(fmt.Sprintf("%s  line %d/%d  word %d  char %d",
		m.Mode(), pos.Line+1, lines, pos.Word+1, pos.Char+1))
}

func renderBanner() string {
	return styles.Theme.Title.Render("invisinote")
}
