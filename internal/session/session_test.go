package session

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"invisinote/internal/errors"
	"invisinote/internal/folders"
	"invisinote/internal/notes"
	"invisinote/pkg/testutils"
	"invisinote/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	copied []string
	opened []string
	err    error
}

func (r *recorder) Copy(text string) error {
	if r.err != nil {
		return r.err
	}
	r.copied = append(r.copied, text)
	return nil
}

func (r *recorder) Open(path string) error {
	if r.err != nil {
		return r.err
	}
	r.opened = append(r.opened, path)
	return nil
}

func newSession(t *testing.T, dirs ...string) (*Session, *recorder) {
	t.Helper()
	m, err := notes.NewManager(folders.NewMemoryStore(dirs...))
	require.NoError(t, err)
	rec := &recorder{}
	return New(m, WithClipboard(rec), WithOpener(rec)), rec
}

func loaded(t *testing.T) (*Session, *recorder, string) {
	t.Helper()
	dir := testutils.CreateNotes(t)
	s, rec := newSession(t, dir)
	out := s.Load()
	require.True(t, out.OK(), out.Text)
	return s, rec, dir
}

func TestLoad(t *testing.T) {
	s, _, _ := loaded(t)
	assert.Equal(t, "hello world  foo", s.Cursor().CurrentLineText())

	out := s.Load()
	assert.Equal(t, ActionLoad, out.Action)
	assert.Equal(t, "Loaded 3 notes.", out.Text)
	assert.Equal(t, errors.Unknown, out.Kind)
}

func TestLoadFailures(t *testing.T) {
	empty := t.TempDir()
	s, _ := newSession(t, empty)
	out := s.Load()
	assert.False(t, out.OK())
	assert.Equal(t, MsgNoNotesFound, out.Text)
	assert.Equal(t, errors.EmptyCollection, out.Kind)
	assert.Equal(t, 0, s.Cursor().LineCount())

	gone := filepath.Join(t.TempDir(), "gone")
	s, _ = newSession(t, gone)
	out = s.Load()
	assert.Equal(t, MsgFolderUnavailable, out.Text)
	assert.Equal(t, errors.FolderUnavailable, out.Kind)

	s, _ = newSession(t)
	out = s.Load()
	assert.Equal(t, MsgNoFolder, out.Text)
	assert.Equal(t, errors.NoSuchFolder, out.Kind)
}

func TestNoteNavigation(t *testing.T) {
	s, _, _ := loaded(t)

	out := s.PreviousNote()
	assert.Equal(t, MsgNoPreviousNote, out.Text)
	assert.Equal(t, errors.NoSuchNote, out.Kind)

	out = s.NextNote()
	require.True(t, out.OK())
	assert.Equal(t, "beta.txt", out.Text)
	assert.Equal(t, "second note", s.Cursor().CurrentLineText())

	s.NextNote()
	out = s.NextNote()
	assert.Equal(t, MsgNoNextNote, out.Text)
	assert.Equal(t, 2, s.Position().Note)
}

func TestNoteChangeResetsCursor(t *testing.T) {
	s, _, _ := loaded(t)
	s.NextLine()
	s.NextWord()
	require.Equal(t, types.Position{Note: 0, Line: 1, Word: 1, Char: 5}, s.Position())

	s.NextNote()
	assert.Equal(t, types.Position{Note: 1}, s.Position())
}

func TestBoundNoteKeepsCursor(t *testing.T) {
	s, _, _ := loaded(t)
	s.NextWord()
	before := s.Position()
	s.PreviousNote()
	assert.Equal(t, before, s.Position())
}

func TestSelectNote(t *testing.T) {
	s, _, _ := loaded(t)
	s.NextLine()

	out := s.SelectNote("GAMMA")
	require.True(t, out.OK())
	assert.Equal(t, ActionSelectNote, out.Action)
	assert.Equal(t, "gamma.txt", out.Text)
	assert.Equal(t, types.Position{Note: 2}, s.Position())
	assert.Equal(t, "   ", s.Cursor().CurrentLineText())

	out = s.SelectNote("missing")
	assert.Equal(t, MsgNoteNotFound, out.Text)
	assert.Equal(t, errors.NoSuchNote, out.Kind)
	assert.Equal(t, 2, s.Position().Note)

	empty, _ := newSession(t)
	out = empty.SelectNote("gamma")
	assert.Equal(t, MsgNoNotes, out.Text)
}

func TestLineWordCharAnnouncements(t *testing.T) {
	s, _, _ := loaded(t)

	assert.Equal(t, "world", s.NextWord().Text)
	assert.Equal(t, "foo", s.NextWord().Text)
	assert.Equal(t, "foo", s.NextWord().Text)
	assert.Equal(t, "world", s.PreviousWord().Text)

	assert.Equal(t, "o", s.NextChar().Text)
	assert.Equal(t, "r", s.NextChar().Text)
	assert.Equal(t, "o", s.PreviousChar().Text)

	assert.Equal(t, "line two", s.NextLine().Text)
	assert.Equal(t, "line two", s.NextLine().Text)
	assert.Equal(t, "hello world  foo", s.PreviousLine().Text)
	assert.Equal(t, types.Position{}, s.Position())
}

func TestSpaceIsAnnouncedAsBlank(t *testing.T) {
	s, _, _ := loaded(t)
	var out Outcome
	for i := 0; i < 5; i++ {
		out = s.NextChar()
	}
	assert.Equal(t, " ", s.Cursor().CurrentCharText())
	assert.Equal(t, MsgBlank, out.Text)
	assert.Equal(t, "w", s.NextChar().Text)
	assert.Equal(t, MsgBlank, s.PreviousChar().Text)
}

func TestBlankLine(t *testing.T) {
	s, _, _ := loaded(t)
	s.NextNote()
	s.NextNote()
	assert.Equal(t, MsgBlank, s.NextLine().Text)
	assert.Equal(t, "", s.NextWord().Text)
}

func TestEmptyCursorAnnouncements(t *testing.T) {
	s, _ := newSession(t, t.TempDir())
	assert.Equal(t, MsgBlank, s.NextLine().Text)
	assert.Equal(t, "", s.NextWord().Text)
	assert.Equal(t, "", s.NextChar().Text)
	assert.Equal(t, MsgNoLine, s.CopyLine().Text)
}

func TestReadNote(t *testing.T) {
	s, _, _ := loaded(t)
	out := s.ReadNote()
	require.True(t, out.OK())
	assert.Equal(t, "hello world  foo\nline two", out.Text)

	s.NextNote()
	s.NextNote()
	assert.Equal(t, notes.EmptyNote, s.ReadNote().Text)

	empty, _ := newSession(t, t.TempDir())
	out = empty.ReadNote()
	assert.Equal(t, MsgNoNotes, out.Text)
	assert.Equal(t, errors.NoSuchNote, out.Kind)
}

func TestReadNoteFailure(t *testing.T) {
	s, _, dir := loaded(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "Alpha.txt")))

	out := s.ReadNote()
	assert.Equal(t, MsgReadFailed, out.Text)
	assert.Equal(t, errors.ReadFailed, out.Kind)

	out = s.NextNote()
	assert.True(t, out.OK())
	assert.Equal(t, "beta.txt", out.Text)
}

func TestCopy(t *testing.T) {
	s, rec, _ := loaded(t)

	assert.Equal(t, MsgLineCopied, s.CopyLine().Text)
	assert.Equal(t, MsgNoteCopied, s.CopyNote().Text)
	assert.Equal(t, []string{"hello world  foo", "hello world  foo\nline two"}, rec.copied)

	s.NextNote()
	s.NextNote()
	assert.Equal(t, notes.EmptyNote, s.CopyNote().Text)
	assert.Len(t, rec.copied, 2)

	rec.err = fmt.Errorf("no display")
	s.PreviousNote()
	out := s.CopyLine()
	assert.False(t, out.OK())
	assert.Equal(t, "No display", out.Text)
}

func TestDefaultSinksReportUnavailable(t *testing.T) {
	dir := testutils.CreateNotes(t)
	m, err := notes.NewManager(folders.NewMemoryStore(dir))
	require.NoError(t, err)
	s := New(m)
	s.Load()

	out := s.CopyLine()
	assert.False(t, out.OK())
	assert.Equal(t, "Clipboard not available", out.Text)

	out = s.OpenFolder()
	assert.False(t, out.OK())
	assert.Equal(t, "Folder opener not available", out.Text)
}

func TestOpenFolder(t *testing.T) {
	s, rec, dir := loaded(t)
	out := s.OpenFolder()
	assert.Equal(t, MsgOpenedPath, out.Text)
	assert.Equal(t, []string{dir}, rec.opened)

	require.NoError(t, os.RemoveAll(dir))
	out = s.OpenFolder()
	assert.Equal(t, MsgPathNotFound, out.Text)
	assert.Equal(t, errors.FolderUnavailable, out.Kind)

	none, _ := newSession(t)
	assert.Equal(t, MsgNoFolder, none.OpenFolder().Text)
}

func TestFolderRotation(t *testing.T) {
	base := t.TempDir()
	dirs := testutils.Mkdirs(t, base, "first", "second", "third")
	testutils.CreateTestFilesWithContent(t, dirs[1], map[string]string{"a.txt": "in second"})

	s, _ := newSession(t, dirs...)
	out := s.NextFolder()
	assert.Equal(t, "second, Loaded 1 notes.", out.Text)
	assert.Equal(t, "in second", s.Cursor().CurrentLineText())

	out = s.NextFolder()
	assert.Equal(t, "third, "+MsgNoNotesFound, out.Text)
	assert.Equal(t, errors.EmptyCollection, out.Kind)
	assert.Equal(t, 0, s.Cursor().LineCount())

	s.NextFolder()
	assert.Equal(t, 0, s.Manager().FolderIndex())
	s.PreviousFolder()
	assert.Equal(t, 2, s.Manager().FolderIndex())

	none, _ := newSession(t)
	out = none.NextFolder()
	assert.Equal(t, MsgNoFolder, out.Text)
	assert.Equal(t, errors.NoSuchFolder, out.Kind)
}

func TestSingleFolderRotationKeepsPosition(t *testing.T) {
	s, _, dir := loaded(t)
	s.NextNote()
	s.NextLine()
	before := s.Position()
	require.Equal(t, types.Position{Note: 1, Line: 1}, before)

	out := s.NextFolder()
	assert.True(t, out.OK())
	assert.Equal(t, filepath.Base(dir), out.Text)
	assert.Equal(t, before, s.Position())

	out = s.PreviousFolder()
	assert.Equal(t, filepath.Base(dir), out.Text)
	assert.Equal(t, before, s.Position())
	assert.Len(t, s.Manager().Notes(), 3)
}

func TestSetFolders(t *testing.T) {
	base := t.TempDir()
	dirs := testutils.Mkdirs(t, base, "valid")
	testutils.CreateTestFilesWithContent(t, dirs[0], map[string]string{"n.txt": "x", "m.txt": "y"})

	s, _ := newSession(t)
	out := s.SetFolders("\n" + filepath.Join(base, "missing") + "\r\n" + dirs[0] + "\n")
	require.True(t, out.OK(), out.Text)
	assert.Equal(t, "1 folder saved. Loaded 2 notes.", out.Text)
	assert.Equal(t, dirs, s.Manager().Folders())
	assert.Equal(t, dirs[0], s.FolderListText())

	out = s.SetFolders("/does/not/exist")
	assert.Equal(t, MsgNoValidFolders, out.Text)
	assert.Equal(t, errors.NoSuchFolder, out.Kind)
	assert.Equal(t, 0, s.Cursor().LineCount())
}

func TestSetFoldersSaveFailure(t *testing.T) {
	dirs := testutils.Mkdirs(t, t.TempDir(), "a", "b")
	store := folders.NewMemoryStore()
	store.SaveErr = fmt.Errorf("read-only")
	m, err := notes.NewManager(store)
	require.NoError(t, err)
	s := New(m)

	out := s.SetFolders(dirs[0] + "\n" + dirs[1])
	assert.False(t, out.OK())
	assert.Equal(t, "2 folders set but not saved.", out.Text)
	assert.Equal(t, dirs, m.Folders())
}

func TestRefreshKeepsPosition(t *testing.T) {
	s, _, dir := loaded(t)
	s.NextNote()
	s.NextLine()
	require.Equal(t, types.Position{Note: 1, Line: 1}, s.Position())

	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"0-first.txt": "new"})
	out := s.Refresh()
	require.True(t, out.OK())
	assert.Equal(t, "Loaded 4 notes.", out.Text)

	note, _ := s.Manager().CurrentNote()
	assert.Equal(t, "beta.txt", note.Name)
	assert.Equal(t, 1, s.Position().Line)
	assert.Equal(t, "with two lines", s.Cursor().CurrentLineText())
}

func TestRefreshAfterNoteRemoved(t *testing.T) {
	s, _, dir := loaded(t)
	s.NextNote()
	require.NoError(t, os.Remove(filepath.Join(dir, "beta.txt")))

	out := s.Refresh()
	require.True(t, out.OK())
	assert.Equal(t, 0, s.Position().Note)
}

func TestStatus(t *testing.T) {
	s, _, _ := loaded(t)
	s.NextLine()
	assert.Equal(t, "note 1 of 3, line 2 of 2", s.Status().Text)

	empty, _ := newSession(t, t.TempDir())
	assert.Equal(t, MsgNoNotes, empty.Status().Text)
}

func TestDispatch(t *testing.T) {
	s, _, _ := loaded(t)

	out := s.Dispatch(ActionNextNote)
	assert.Equal(t, ActionNextNote, out.Action)
	assert.Equal(t, "beta.txt", out.Text)

	out = s.Dispatch("dance")
	assert.False(t, out.OK())
	assert.Equal(t, "dance", out.Action)
	assert.Equal(t, errors.Unknown, out.Kind)

	for _, name := range s.Actions() {
		assert.NotPanics(t, func() { s.Dispatch(name) }, name)
	}
	assert.Contains(t, s.Actions(), ActionStatus)
}

func TestSessionsAreIndependent(t *testing.T) {
	dir := testutils.CreateNotes(t)
	a, _ := newSession(t, dir)
	b, _ := newSession(t, dir)
	a.Load()
	b.Load()

	a.NextNote()
	a.NextLine()
	assert.Equal(t, types.Position{Note: 1, Line: 1}, a.Position())
	assert.Equal(t, types.Position{}, b.Position())
}
