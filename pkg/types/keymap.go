package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application modes.
// It lives in pkg/types so the TUI and GUI share one gesture table.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Notes
	PrevNote  key.Binding
	NextNote  key.Binding
	LoadNotes key.Binding

	// Cursor
	PrevLine key.Binding
	NextLine key.Binding
	PrevWord key.Binding
	NextWord key.Binding
	PrevChar key.Binding
	NextChar key.Binding

	// Note actions
	ReadNote key.Binding
	CopyNote key.Binding
	CopyLine key.Binding

	// Folders
	OpenFolder  key.Binding
	PrevFolder  key.Binding
	NextFolder  key.Binding
	EditFolders key.Binding

	// Folder editor
	SaveFolders   key.Binding
	CancelFolders key.Binding
}

// DefaultKeyMap returns the bindings used by both front-ends.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		PrevNote:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "prev note")),
		NextNote:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "next note")),
		LoadNotes: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "load notes")),

		PrevLine: key.NewBinding(key.WithKeys("i", "up"), key.WithHelp("i/↑", "prev line")),
		NextLine: key.NewBinding(key.WithKeys("k", "down"), key.WithHelp("k/↓", "next line")),
		PrevWord: key.NewBinding(key.WithKeys("j", "ctrl+left"), key.WithHelp("j", "prev word")),
		NextWord: key.NewBinding(key.WithKeys("l", "ctrl+right"), key.WithHelp("l", "next word")),
		PrevChar: key.NewBinding(key.WithKeys(",", "left"), key.WithHelp(",/←", "prev char")),
		NextChar: key.NewBinding(key.WithKeys(".", "right"), key.WithHelp("./→", "next char")),

		ReadNote: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "read note")),
		CopyNote: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "copy note")),
		CopyLine: key.NewBinding(key.WithKeys(";"), key.WithHelp(";", "copy line")),

		OpenFolder:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "open folder")),
		PrevFolder:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev folder")),
		NextFolder:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next folder")),
		EditFolders: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit folders")),

		SaveFolders:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save folders")),
		CancelFolders: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextNote, k.NextLine, k.NextWord, k.NextChar, k.ReadNote, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevNote, k.NextNote, k.LoadNotes, k.ReadNote, k.CopyNote},
		{k.PrevLine, k.NextLine, k.PrevWord, k.NextWord, k.PrevChar, k.NextChar, k.CopyLine},
		{k.OpenFolder, k.PrevFolder, k.NextFolder, k.EditFolders},
		{k.Help, k.Quit},
	}
}
