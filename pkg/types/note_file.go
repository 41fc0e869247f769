package types

import (
	"path/filepath"
	"strings"
)

// NoteFile is one note found directly inside the active folder.
type NoteFile struct {
	Path string `json:"path"` // Absolute path
	Name string `json:"name"` // Base name, used for display and sorting
}

// NewNoteFile builds a NoteFile from a path, deriving the display name.
func NewNoteFile(path string) NoteFile {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return NoteFile{Path: path, Name: filepath.Base(path)}
}

// Title returns the display name without its extension.
func (n NoteFile) Title() string {
	return strings.TrimSuffix(n.Name, filepath.Ext(n.Name))
}
