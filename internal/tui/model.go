package tui

import (
	"path/filepath"

	"invisinote/internal/log"
	"invisinote/internal/session"
	"invisinote/internal/tui/components"
	"invisinote/internal/tui/messages"
	"invisinote/internal/tui/styles"
	"invisinote/internal/tui/views"
	"invisinote/internal/watch"
	"invisinote/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the terminal navigator. All session calls happen inside Update so
// the session is only ever touched from the bubbletea event loop.
type Model struct {
	sess *session.Session
	keys types.KeyMap
	help help.Model

	// Core state
	mode     types.Mode
	showHelp bool
	width    int
	height   int

	status *components.StatusBar
	editor *components.FolderEditor

	// Optional folder watcher feeding reload requests
	watcher *watch.Watcher
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher feeds changes from w back in as reloads and keeps w pointed at
// the active folder.
func WithWatcher(w *watch.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithKeyMap replaces the default bindings.
func WithKeyMap(k types.KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

func New(sess *session.Session, opts ...Option) *Model {
	m := &Model{
		sess:   sess,
		keys:   types.DefaultKeyMap(),
		help:   help.New(),
		mode:   types.Normal,
		width:  80,
		status: components.NewStatusBar(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(requestReload(false), m.waitForChange())
}

func requestReload(keep bool) tea.Cmd {
	return func() tea.Msg {
		return messages.ReloadRequestMsg{KeepPosition: keep}
	}
}

// waitForChange blocks on the watcher channel outside the event loop and
// hands the change back as a message.
func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.WatchChangeMsg{Change: change}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.mode == types.EditFolders && m.editor != nil {
		return styles.Theme.App.Render(m.editor.View())
	}
	m.help.ShowAll = m.showHelp
	return views.RenderMainView(m, m.help.View(m.keys))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.editor != nil {
			m.editor.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case messages.ReloadRequestMsg:
		if msg.KeepPosition {
			m.apply(m.sess.Refresh())
		} else {
			m.apply(m.sess.Load())
		}
		m.retargetWatcher()
		return m, nil

	case messages.WatchChangeMsg:
		folder, ok := m.sess.Manager().ActiveFolder()
		if ok && filepath.Clean(msg.Change.Folder) == filepath.Clean(folder) {
			log.LogWithFields(log.F("path", msg.Change.Path), log.F("op", msg.Change.Op.String())).
				Debug("notes folder changed, refreshing")
			m.apply(m.sess.Refresh())
		}
		return m, m.waitForChange()

	case messages.WatchClosedMsg:
		log.Debug("folder watcher closed")
		return m, nil

	case messages.ErrorMsg:
		m.status.SetText(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.mode == types.EditFolders {
			return m.handleEditorKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}
	return m, nil
}

func (m *Model) bindings() []struct {
	binding key.Binding
	action  string
} {
	return []struct {
		binding key.Binding
		action  string
	}{
		{m.keys.LoadNotes, session.ActionLoad},
		{m.keys.PrevNote, session.ActionPrevNote},
		{m.keys.NextNote, session.ActionNextNote},
		{m.keys.PrevLine, session.ActionPrevLine},
		{m.keys.NextLine, session.ActionNextLine},
		{m.keys.PrevWord, session.ActionPrevWord},
		{m.keys.NextWord, session.ActionNextWord},
		{m.keys.PrevChar, session.ActionPrevChar},
		{m.keys.NextChar, session.ActionNextChar},
		{m.keys.ReadNote, session.ActionReadNote},
		{m.keys.CopyNote, session.ActionCopyNote},
		{m.keys.CopyLine, session.ActionCopyLine},
		{m.keys.OpenFolder, session.ActionOpenFolder},
		{m.keys.PrevFolder, session.ActionPrevFolder},
		{m.keys.NextFolder, session.ActionNextFolder},
	}
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.EditFolders):
		m.mode = types.EditFolders
		m.editor = components.NewFolderEditor(m.sess.FolderListText())
		m.editor.SetSize(m.width, m.height)
		return m, m.editor.Focus()
	}

	for _, b := range m.bindings() {
		if !key.Matches(msg, b.binding) {
			continue
		}
		m.apply(m.sess.Dispatch(b.action))
		switch b.action {
		case session.ActionLoad, session.ActionNextFolder, session.ActionPrevFolder:
			m.retargetWatcher()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SaveFolders):
		text := m.editor.Value()
		m.closeEditor()
		m.apply(m.sess.SetFolders(text))
		m.retargetWatcher()
		return m, nil
	case key.Matches(msg, m.keys.CancelFolders):
		m.closeEditor()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, m.editor.Update(msg)
}

func (m *Model) closeEditor() {
	m.mode = types.Normal
	m.editor = nil
}

func (m *Model) apply(out session.Outcome) {
	m.status.SetText(out.Text, !out.OK())
}

func (m *Model) retargetWatcher() {
	if m.watcher == nil {
		return
	}
	folder, _ := m.sess.Manager().ActiveFolder()
	if err := m.watcher.Retarget(folder); err != nil {
		log.LogWithFields(log.F("directory", folder), log.F("error", err)).Warn("could not watch notes folder")
	}
}

// Getters

func (m *Model) Session() *session.Session {
	return m.sess
}

func (m *Model) Mode() types.Mode {
	return m.mode
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}

func (m *Model) Width() int {
	return m.width
}

// ActiveFolder returns the active folder path, or "" when none is configured.
func (m *Model) ActiveFolder() string {
	folder, _ := m.sess.Manager().ActiveFolder()
	return folder
}

func (m *Model) CurrentNote() (types.NoteFile, bool) {
	return m.sess.Manager().CurrentNote()
}

func (m *Model) NoteCount() int {
	return len(m.sess.Manager().Notes())
}

func (m *Model) Lines() []string {
	return m.sess.Cursor().Lines()
}

func (m *Model) Position() types.Position {
	return m.sess.Position()
}

// Announcement returns the text of the last outcome.
func (m *Model) Announcement() string {
	return m.status.Text()
}

func (m *Model) AnnouncementFailed() bool {
	return m.status.Failed()
}

// FolderEditorValue returns the folder editor's text while it is open.
func (m *Model) FolderEditorValue() (string, bool) {
	if m.editor == nil {
		return "", false
	}
	return m.editor.Value(), true
}
