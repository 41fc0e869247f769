package components

import (
	"invisinote/internal/tui/styles"
)

// StatusBar shows the last announcement.
type StatusBar struct {
	text   string
	failed bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetText sets the announcement and whether it reports a failure.
func (s *StatusBar) SetText(text string, failed bool) {
	s.text = text
	s.failed = failed
}

func (s *StatusBar) Text() string {
	return s.text
}

func (s *StatusBar) Failed() bool {
	return s.failed
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	if s.failed {
		return styles.Theme.Error.Render(s.text)
	}
	return styles.Theme.Announcement.Render(s.text)
}
