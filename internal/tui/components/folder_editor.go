package components

import (
	"strings"

	"invisinote/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// FolderEditor is the modal for editing the folder list, one path per line.
type FolderEditor struct {
	area textarea.Model
}

func NewFolderEditor(text string) *FolderEditor {
	area := textarea.New()
	area.Placeholder = "One folder path per line"
	area.ShowLineNumbers = true
	area.CharLimit = 0
	area.SetWidth(60)
	area.SetHeight(8)
	area.SetValue(text)
	return &FolderEditor{area: area}
}

// Focus gives the text area keyboard focus.
func (fe *FolderEditor) Focus() tea.Cmd {
	return fe.area.Focus()
}

// SetSize fits the editor inside width by height cells.
func (fe *FolderEditor) SetSize(width, height int) {
	if width > 10 {
		fe.area.SetWidth(width - 6)
	}
	if height > 10 {
		fe.area.SetHeight(height - 8)
	}
}

func (fe *FolderEditor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fe.area, cmd = fe.area.Update(msg)
	return cmd
}

// SetValue replaces the edited text.
func (fe *FolderEditor) SetValue(text string) {
	fe.area.SetValue(text)
}

// Value returns the edited text.
func (fe *FolderEditor) Value() string {
	return fe.area.Value()
}

func (fe *FolderEditor) View() string {
	var s strings.Builder
	s.WriteString(styles.Theme.Title.Render("Note folders"))
	s.WriteString("\n")
	s.WriteString(styles.Theme.Editor.Render(fe.area.View()))
	s.WriteString("\n")
	s.WriteString(styles.Theme.Help.Render("ctrl+s save • esc cancel • missing folders are dropped"))
	return s.String()
}
