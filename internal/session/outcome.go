// Package session pairs one notes manager with one cursor and turns every
// navigation request into an announceable Outcome.
package session

import "invisinote/internal/errors"

// Action names accepted by Dispatch.
const (
	ActionLoad       = "load"
	ActionRefresh    = "refresh"
	ActionNextNote   = "next_note"
	ActionPrevNote   = "prev_note"
	ActionNextLine   = "next_line"
	ActionPrevLine   = "prev_line"
	ActionNextWord   = "next_word"
	ActionPrevWord   = "prev_word"
	ActionNextChar   = "next_char"
	ActionPrevChar   = "prev_char"
	ActionReadNote   = "read_note"
	ActionCopyNote   = "copy_note"
	ActionCopyLine   = "copy_line"
	ActionNextFolder = "next_folder"
	ActionPrevFolder = "prev_folder"
	ActionOpenFolder = "open_folder"
	ActionStatus     = "status"
	ActionSetFolders = "set_folders"
	ActionSelectNote = "select_note"
)

// Announcements shared by the front-ends.
const (
	MsgNoNotesFound      = "No notes found"
	MsgFolderUnavailable = "Folder not available"
	MsgNoFolder          = "No folder configured"
	MsgNoNextNote        = "No next note"
	MsgNoPreviousNote    = "No previous note"
	MsgNoNotes           = "No notes available"
	MsgNoteCopied        = "Note copied"
	MsgLineCopied        = "Line copied"
	MsgNoLine            = "No line to copy"
	MsgOpenedPath        = "Opened path"
	MsgPathNotFound      = "Path not found"
	MsgReadFailed        = "Could not read note"
	MsgBlank             = "blank"
	MsgNoValidFolders    = "No valid folders"
	MsgNoteNotFound      = "Note not found"
)

// Outcome is the result of one operation: what happened and what to announce.
type Outcome struct {
	Action string
	Text   string
	Kind   errors.ErrorKind
	Err    error
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

func ok(action, text string) Outcome {
	return Outcome{Action: action, Text: text}
}

func failed(action, text string, err error) Outcome {
	return Outcome{Action: action, Text: text, Kind: errors.KindOf(err), Err: err}
}
