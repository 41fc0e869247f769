package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"invisinote/internal/cursor"
	"invisinote/internal/errors"
	"invisinote/internal/log"
	"invisinote/internal/notes"
	"invisinote/pkg/types"
)

// Session owns one notes manager and one cursor. Calls must not overlap;
// concurrent users each need their own Session.
type Session struct {
	notes     *notes.Manager
	cursor    *cursor.Model
	clipboard Clipboard
	opener    Opener
	actions   map[string]func() Outcome
}

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets where copied text goes.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) {
		if c != nil {
			s.clipboard = c
		}
	}
}

// WithOpener sets how folders are opened.
func WithOpener(o Opener) Option {
	return func(s *Session) {
		if o != nil {
			s.opener = o
		}
	}
}

// New builds a session around manager with an empty cursor.
func New(manager *notes.Manager, opts ...Option) *Session {
	s := &Session{
		notes:     manager,
		cursor:    cursor.New(nil),
		clipboard: noClipboard{},
		opener:    noOpener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.actions = map[string]func() Outcome{
		ActionLoad:       s.Load,
		ActionRefresh:    s.Refresh,
		ActionNextNote:   s.NextNote,
		ActionPrevNote:   s.PreviousNote,
		ActionNextLine:   s.NextLine,
		ActionPrevLine:   s.PreviousLine,
		ActionNextWord:   s.NextWord,
		ActionPrevWord:   s.PreviousWord,
		ActionNextChar:   s.NextChar,
		ActionPrevChar:   s.PreviousChar,
		ActionReadNote:   s.ReadNote,
		ActionCopyNote:   s.CopyNote,
		ActionCopyLine:   s.CopyLine,
		ActionNextFolder: s.NextFolder,
		ActionPrevFolder: s.PreviousFolder,
		ActionOpenFolder: s.OpenFolder,
		ActionStatus:     s.Status,
	}
	return s
}

// Manager returns the session's notes manager.
func (s *Session) Manager() *notes.Manager {
	return s.notes
}

// Cursor returns the session's cursor.
func (s *Session) Cursor() *cursor.Model {
	return s.cursor
}

// Position returns the combined note and cursor position.
func (s *Session) Position() types.Position {
	p := s.cursor.Position()
	return types.Position{Note: s.notes.NoteIndex(), Line: p.Line, Word: p.Word, Char: p.Char}
}

// Actions lists the names Dispatch accepts.
func (s *Session) Actions() []string {
	names := make([]string, 0, len(s.actions))
	for name := range s.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the operation registered under action.
func (s *Session) Dispatch(action string) Outcome {
	fn, found := s.actions[action]
	if !found {
		return failed(action, "Unknown action", errors.Newf("unknown action %q", action))
	}
	out := fn()
	logger := log.LogWithFields(log.F("action", action), log.F("kind", out.Kind.String()))
	if out.Err != nil {
		logger.WithError(out.Err).Debug("action failed")
	} else {
		logger.Debug("action done")
	}
	return out
}

// Load rereads the active folder and moves to the first note.
func (s *Session) Load() Outcome {
	return s.load(ActionLoad)
}

func (s *Session) load(action string) Outcome {
	n, err := s.notes.ReloadActiveFolder()
	s.syncCursor()
	if err != nil {
		return failed(action, folderMessage(err), err)
	}
	return ok(action, fmt.Sprintf("Loaded %d notes.", n))
}

// Refresh rereads the active folder but stays on the same note and line when
// they still exist.
func (s *Session) Refresh() Outcome {
	note, hadNote := s.notes.CurrentNote()
	line := s.cursor.Position().Line

	out := s.load(ActionRefresh)
	if !out.OK() || !hadNote {
		return out
	}
	if _, err := s.notes.SelectNoteByName(note.Name); err != nil {
		return out
	}
	s.syncCursor()
	s.cursor.SetLine(line)
	return out
}

// NextNote moves to the next note and announces its name.
func (s *Session) NextNote() Outcome {
	return s.stepNote(ActionNextNote, s.notes.NextNote, MsgNoNextNote)
}

// PreviousNote moves to the previous note and announces its name.
func (s *Session) PreviousNote() Outcome {
	return s.stepNote(ActionPrevNote, s.notes.PreviousNote, MsgNoPreviousNote)
}

func (s *Session) stepNote(action string, step func() (types.NoteFile, error), boundMsg string) Outcome {
	before := s.notes.NoteIndex()
	note, err := step()
	if s.notes.NoteIndex() != before || err == nil {
		s.syncCursor()
	}
	switch {
	case err == nil:
		return ok(action, note.Name)
	case errors.IsReadFailed(err):
		return failed(action, fmt.Sprintf("%s, %s", note.Name, strings.ToLower(MsgReadFailed)), err)
	default:
		return failed(action, boundMsg, err)
	}
}

// SelectNote makes the note with the given name active and announces it.
func (s *Session) SelectNote(name string) Outcome {
	before := s.notes.NoteIndex()
	note, err := s.notes.SelectNoteByName(name)
	if s.notes.NoteIndex() != before || err == nil {
		s.syncCursor()
	}
	switch {
	case err == nil:
		return ok(ActionSelectNote, note.Name)
	case errors.IsReadFailed(err):
		return failed(ActionSelectNote, fmt.Sprintf("%s, %s", note.Name, strings.ToLower(MsgReadFailed)), err)
	case len(s.notes.Notes()) == 0:
		return failed(ActionSelectNote, MsgNoNotes, err)
	default:
		return failed(ActionSelectNote, MsgNoteNotFound, err)
	}
}

// NextLine moves down a line and announces it.
func (s *Session) NextLine() Outcome {
	s.cursor.NextLine()
	return ok(ActionNextLine, s.lineText())
}

// PreviousLine moves up a line and announces it.
func (s *Session) PreviousLine() Outcome {
	s.cursor.PreviousLine()
	return ok(ActionPrevLine, s.lineText())
}

// NextWord moves to the next word and announces it.
func (s *Session) NextWord() Outcome {
	s.cursor.NextWord()
	return ok(ActionNextWord, s.cursor.CurrentWordText())
}

// PreviousWord moves to the previous word and announces it.
func (s *Session) PreviousWord() Outcome {
	s.cursor.PreviousWord()
	return ok(ActionPrevWord, s.cursor.CurrentWordText())
}

// NextChar moves right and announces the character.
func (s *Session) NextChar() Outcome {
	s.cursor.NextChar()
	return ok(ActionNextChar, s.charText())
}

// PreviousChar moves left and announces the character.
func (s *Session) PreviousChar() Outcome {
	s.cursor.PreviousChar()
	return ok(ActionPrevChar, s.charText())
}

// ReadNote announces the whole active note.
func (s *Session) ReadNote() Outcome {
	content, err := s.notes.CurrentNoteContent()
	if err != nil {
		return failed(ActionReadNote, noteMessage(err), err)
	}
	return ok(ActionReadNote, content)
}

// CopyNote copies the whole active note to the clipboard.
func (s *Session) CopyNote() Outcome {
	content, err := s.notes.CurrentNoteContent()
	if err != nil {
		return failed(ActionCopyNote, noteMessage(err), err)
	}
	if content == notes.EmptyNote {
		return ok(ActionCopyNote, notes.EmptyNote)
	}
	if err := s.clipboard.Copy(content); err != nil {
		return failed(ActionCopyNote, capitalize(err.Error()), err)
	}
	return ok(ActionCopyNote, MsgNoteCopied)
}

// CopyLine copies the current line to the clipboard.
func (s *Session) CopyLine() Outcome {
	line := s.cursor.CurrentLineText()
	if line == "" {
		return ok(ActionCopyLine, MsgNoLine)
	}
	if err := s.clipboard.Copy(line); err != nil {
		return failed(ActionCopyLine, capitalize(err.Error()), err)
	}
	return ok(ActionCopyLine, MsgLineCopied)
}

// NextFolder rotates to the next folder and loads it.
func (s *Session) NextFolder() Outcome {
	return s.rotateFolder(ActionNextFolder, s.notes.NextFolder)
}

// PreviousFolder rotates to the previous folder and loads it.
func (s *Session) PreviousFolder() Outcome {
	return s.rotateFolder(ActionPrevFolder, s.notes.PreviousFolder)
}

func (s *Session) rotateFolder(action string, rotate func() int) Outcome {
	if len(s.notes.Folders()) == 0 {
		s.syncCursor()
		return failed(action, MsgNoFolder, errors.ErrNoSuchFolder)
	}
	before := s.notes.FolderIndex()
	folder, _ := s.notes.ActiveFolder()
	if rotate() == before {
		return ok(action, filepath.Base(folder))
	}
	folder, _ = s.notes.ActiveFolder()
	out := s.load(action)
	out.Text = fmt.Sprintf("%s, %s", filepath.Base(folder), out.Text)
	return out
}

// OpenFolder opens the active folder in the file browser.
func (s *Session) OpenFolder() Outcome {
	folder, found := s.notes.ActiveFolder()
	if !found {
		return failed(ActionOpenFolder, MsgNoFolder, errors.ErrNoSuchFolder)
	}
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		ferr := errors.NewFolderError("folder not available", folder, errors.FolderUnavailable, err)
		return failed(ActionOpenFolder, MsgPathNotFound, ferr)
	}
	if err := s.opener.Open(folder); err != nil {
		return failed(ActionOpenFolder, capitalize(err.Error()), err)
	}
	return ok(ActionOpenFolder, MsgOpenedPath)
}

// SetFolders replaces the folder list with the newline-separated paths in
// text and loads the first folder.
func (s *Session) SetFolders(text string) Outcome {
	kept, err := s.notes.SetFolders(ParseFolderList(text))
	s.syncCursor()
	if len(kept) == 0 {
		if err == nil {
			err = errors.ErrNoSuchFolder
		}
		return failed(ActionSetFolders, MsgNoValidFolders, err)
	}

	count := fmt.Sprintf("%d folders", len(kept))
	if len(kept) == 1 {
		count = "1 folder"
	}
	if err != nil {
		return failed(ActionSetFolders, count+" set but not saved.", err)
	}
	saved := count + " saved."

	load := s.load(ActionSetFolders)
	load.Text = saved + " " + load.Text
	return load
}

// ParseFolderList splits newline-separated folder input into paths.
func ParseFolderList(text string) []string {
	return strings.Split(notes.NormalizeNewlines(text), "\n")
}

// FolderListText renders the folder list the way ParseFolderList reads it.
func (s *Session) FolderListText() string {
	return strings.Join(s.notes.Folders(), "\n")
}

// Status summarises where the cursor is.
func (s *Session) Status() Outcome {
	all := s.notes.Notes()
	if len(all) == 0 {
		return ok(ActionStatus, MsgNoNotes)
	}
	pos := s.Position()
	lines := s.cursor.LineCount()
	text := fmt.Sprintf("note %d of %d, line %d of %d", pos.Note+1, len(all), pos.Line+1, lines)
	if lines == 0 {
		text = fmt.Sprintf("note %d of %d, no lines", pos.Note+1, len(all))
	}
	return ok(ActionStatus, text)
}

func (s *Session) syncCursor() {
	s.cursor.SetLines(s.notes.CurrentLines())
}

func (s *Session) lineText() string {
	line := s.cursor.CurrentLineText()
	if strings.TrimFunc(line, cursor.IsSpace) == "" {
		return MsgBlank
	}
	return line
}

func (s *Session) charText() string {
	ch := s.cursor.CurrentCharText()
	if ch == "" {
		return ""
	}
	if r := []rune(ch)[0]; cursor.IsSpace(r) {
		return MsgBlank
	}
	return ch
}

func folderMessage(err error) string {
	switch {
	case errors.IsEmptyCollection(err):
		return MsgNoNotesFound
	case errors.IsFolderUnavailable(err):
		return MsgFolderUnavailable
	case errors.IsNoSuchFolder(err):
		return MsgNoFolder
	default:
		return capitalize(err.Error())
	}
}

func noteMessage(err error) string {
	switch {
	case errors.IsNoSuchNote(err):
		return MsgNoNotes
	case errors.IsReadFailed(err):
		return MsgReadFailed
	default:
		return capitalize(err.Error())
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
