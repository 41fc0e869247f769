// Package notes resolves the active notes folder, the notes inside it and the
// lines of the active note.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"invisinote/internal/errors"
	"invisinote/internal/folders"
	"invisinote/internal/log"
	"invisinote/pkg/types"
)

// EmptyNote is returned by CurrentNoteContent for notes with no visible text.
const EmptyNote = "Empty note"

// Manager owns the folder list, the note collection of the active folder and
// the lines of the active note. It is not safe for concurrent use; each
// session owns its own Manager.
type Manager struct {
	store   folders.Store
	matcher *Matcher
	decode  Decoder

	folders   []string
	folderIdx int

	notes   []types.NoteFile
	noteIdx int

	lines    []string
	linesErr error
}

// Option configures a Manager.
type Option func(*Manager)

// WithMatcher sets which files count as notes.
func WithMatcher(m *Matcher) Option {
	return func(mgr *Manager) {
		if m != nil {
			mgr.matcher = m
		}
	}
}

// WithDecoder replaces the content decoder.
func WithDecoder(d Decoder) Option {
	return func(mgr *Manager) {
		if d != nil {
			mgr.decode = d
		}
	}
}

// NewManager builds a manager and loads the folder list from store. A load
// error is returned alongside a usable manager holding whatever the store
// fell back to.
func NewManager(store folders.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		store = folders.NewMemoryStore()
	}
	m := &Manager{
		store:   store,
		matcher: DefaultMatcher(),
		decode:  Decode,
	}
	for _, opt := range opts {
		opt(m)
	}

	paths, err := store.Load()
	m.folders = append([]string(nil), paths...)
	if err != nil {
		log.LogWithError(err).Debug("folder list could not be loaded, using default")
	}
	return m, err
}

// SetFolders replaces the folder list with the entries of paths that are
// non-empty existing directories, in order and without duplicates. The active
// folder becomes the first entry and the note collection is cleared. The list
// is persisted; a persistence error is returned but the new list stays in
// effect.
func (m *Manager) SetFolders(paths []string) ([]string, error) {
	kept := make([]string, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		if seen[p] {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			log.Debugf("dropping folder %s: not an existing directory", p)
			continue
		}
		seen[p] = true
		kept = append(kept, p)
	}

	m.folders = kept
	m.folderIdx = 0
	m.clearNotes()

	if err := m.store.Save(kept); err != nil {
		log.LogWithError(err).Warn("folder list could not be saved")
		return m.Folders(), fmt.Errorf("failed to save folder list: %w", err)
	}
	return m.Folders(), nil
}

// Folders returns a copy of the folder list.
func (m *Manager) Folders() []string {
	return append([]string(nil), m.folders...)
}

// FolderIndex returns the active folder index.
func (m *Manager) FolderIndex() int {
	return m.folderIdx
}

// ActiveFolder returns the active folder path, if any.
func (m *Manager) ActiveFolder() (string, bool) {
	if len(m.folders) == 0 {
		return "", false
	}
	return m.folders[m.folderIdx], true
}

// NextFolder rotates to the next folder, wrapping at the end.
func (m *Manager) NextFolder() int {
	return m.rotateFolder(1)
}

// PreviousFolder rotates to the previous folder, wrapping at the start.
func (m *Manager) PreviousFolder() int {
	return m.rotateFolder(-1)
}

func (m *Manager) rotateFolder(delta int) int {
	n := len(m.folders)
	if n < 2 {
		return m.folderIdx
	}
	m.folderIdx = ((m.folderIdx+delta)%n + n) % n
	m.clearNotes()
	return m.folderIdx
}

// SelectFolder makes folder i active.
func (m *Manager) SelectFolder(i int) (int, error) {
	if len(m.folders) == 0 {
		return 0, errors.ErrNoSuchFolder
	}
	if i < 0 || i >= len(m.folders) {
		return m.folderIdx, errors.NewFolderError(fmt.Sprintf("no folder at index %d", i), "", errors.NoSuchFolder, nil)
	}
	if i != m.folderIdx {
		m.folderIdx = i
		m.clearNotes()
	}
	return m.folderIdx, nil
}

// ReloadActiveFolder rereads the notes of the active folder, selects the
// first one and loads its lines. It returns the number of notes found. On
// error the collection and lines are left empty.
func (m *Manager) ReloadActiveFolder() (int, error) {
	m.clearNotes()

	folder, ok := m.ActiveFolder()
	if !ok {
		return 0, errors.ErrNoSuchFolder
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, errors.NewFolderError("folder not available", folder, errors.FolderUnavailable, err)
	}

	var found []types.NoteFile
	for _, entry := range entries {
		if !m.matcher.Match(entry.Name()) {
			continue
		}
		path := filepath.Join(folder, entry.Name())
		if !isRegularFile(entry, path) {
			continue
		}
		found = append(found, types.NewNoteFile(path))
	}

	if len(found) == 0 {
		return 0, errors.NewFolderError("no notes found", folder, errors.EmptyCollection, nil)
	}

	sort.SliceStable(found, func(i, j int) bool {
		a, b := strings.ToLower(found[i].Name), strings.ToLower(found[j].Name)
		if a != b {
			return a < b
		}
		return found[i].Name < found[j].Name
	})

	m.notes = found
	m.noteIdx = 0
	m.loadLines()
	log.Debugf("loaded %d notes from %s", len(found), folder)
	return len(found), nil
}

func isRegularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Notes returns a copy of the note collection.
func (m *Manager) Notes() []types.NoteFile {
	return append([]types.NoteFile(nil), m.notes...)
}

// NoteIndex returns the active note index.
func (m *Manager) NoteIndex() int {
	return m.noteIdx
}

// CurrentNote returns the active note, if any.
func (m *Manager) CurrentNote() (types.NoteFile, bool) {
	if len(m.notes) == 0 {
		return types.NoteFile{}, false
	}
	return m.notes[m.noteIdx], true
}

// NextNote moves to the next note without wrapping. At the last note it
// returns a NoSuchNote error and the active note is unchanged.
func (m *Manager) NextNote() (types.NoteFile, error) {
	return m.stepNote(1, "no next note")
}

// PreviousNote moves to the previous note without wrapping.
func (m *Manager) PreviousNote() (types.NoteFile, error) {
	return m.stepNote(-1, "no previous note")
}

func (m *Manager) stepNote(delta int, boundMsg string) (types.NoteFile, error) {
	if len(m.notes) == 0 {
		return types.NoteFile{}, errors.ErrNoSuchNote
	}
	target := m.noteIdx + delta
	if target < 0 || target >= len(m.notes) {
		return m.notes[m.noteIdx], errors.NewNoteError(boundMsg, "", errors.NoSuchNote, nil)
	}
	m.noteIdx = target
	m.loadLines()
	return m.notes[m.noteIdx], m.linesErr
}

// SelectNoteByName makes the note with the given file name or title active.
// Names are compared case-insensitively.
func (m *Manager) SelectNoteByName(name string) (types.NoteFile, error) {
	if len(m.notes) == 0 {
		return types.NoteFile{}, errors.ErrNoSuchNote
	}
	for i, n := range m.notes {
		if strings.EqualFold(n.Name, name) || strings.EqualFold(n.Title(), name) {
			if i != m.noteIdx {
				m.noteIdx = i
				m.loadLines()
			}
			return n, m.linesErr
		}
	}
	return types.NoteFile{}, errors.NewNoteError("note not found", name, errors.NoSuchNote, nil)
}

// CurrentLines returns the lines of the active note, empty when no note is
// active or its read failed.
func (m *Manager) CurrentLines() []string {
	return append([]string(nil), m.lines...)
}

// LinesError returns the error from the last line load, if any.
func (m *Manager) LinesError() error {
	return m.linesErr
}

// CurrentNoteContent reads the active note and returns its text trimmed of
// surrounding whitespace, or EmptyNote when nothing visible remains.
func (m *Manager) CurrentNoteContent() (string, error) {
	note, ok := m.CurrentNote()
	if !ok {
		return "", errors.ErrNoSuchNote
	}
	text, err := m.read(note)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(NormalizeNewlines(text))
	if text == "" {
		return EmptyNote, nil
	}
	return text, nil
}

func (m *Manager) read(note types.NoteFile) (string, error) {
	data, err := os.ReadFile(note.Path)
	if err != nil {
		return "", errors.NewNoteError("could not read note", note.Path, errors.ReadFailed, err)
	}
	text, err := m.decode(data)
	if err != nil {
		return "", errors.NewNoteError("could not decode note", note.Path, errors.ReadFailed, err)
	}
	return text, nil
}

func (m *Manager) loadLines() {
	m.lines = nil
	m.linesErr = nil

	note, ok := m.CurrentNote()
	if !ok {
		return
	}
	text, err := m.read(note)
	if err != nil {
		log.LogWithError(err).Warn("note read failed")
		m.linesErr = err
		return
	}
	m.lines = SplitLines(text)
}

func (m *Manager) clearNotes() {
	m.notes = nil
	m.noteIdx = 0
	m.lines = nil
	m.linesErr = nil
}
