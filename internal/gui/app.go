//go:build !nogui
// +build !nogui

package gui

import (
	"path/filepath"
	"sync"

	"invisinote/internal/log"
	"invisinote/internal/session"
	"invisinote/internal/watch"
	"invisinote/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	keys       types.KeyMap
	watcher    *watch.Watcher

	// Guards sess; fyne callbacks and the watch goroutine both reach it
	mu   sync.Mutex
	sess *session.Session

	// Maps typed keys to session action names
	keyActions map[string]string

	folderLabel   *widget.Label
	noteLabel     *widget.Label
	lineLabel     *widget.Label
	wordLabel     *widget.Label
	charLabel     *widget.Label
	announceLabel *widget.Label
	folderEntry   *widget.Entry
	saveButton    *widget.Button
	buttons       map[string]*widget.Button
}

// Option configures an App.
type Option func(*App)

// WithFyneApp runs the navigator on an existing fyne application.
func WithFyneApp(fa fyne.App) Option {
	return func(a *App) {
		a.fyneApp = fa
	}
}

// WithWatcher reloads the active folder when w reports a change.
func WithWatcher(w *watch.Watcher) Option {
	return func(a *App) {
		a.watcher = w
	}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(f.session, WithWatcher(f.watcher)), nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// NewApp creates a new GUI application
func NewApp(sess *session.Session, opts ...Option) *App {
	a := &App{
		sess:    sess,
		keys:    types.DefaultKeyMap(),
		buttons: make(map[string]*widget.Button),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fyneApp == nil {
		// Create app with a unique ID for preferences storage
		a.fyneApp = app.NewWithID("io.github.invisinote")
	}
	a.keyActions = keyActions(a.keys)
	a.mainWindow = a.fyneApp.NewWindow("Invisinote")
	a.setupMainWindow()
	return a
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.perform(session.ActionLoad)
	if a.watcher != nil {
		go a.followChanges()
	}

	a.mainWindow.Show()
	a.fyneApp.Run()
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogWithError(err).Error(title)
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

// perform runs one session action and refreshes the labels.
func (a *App) perform(action string) session.Outcome {
	a.mu.Lock()
	out := a.sess.Dispatch(action)
	switch action {
	case session.ActionLoad, session.ActionNextFolder, session.ActionPrevFolder:
		a.retargetWatcher()
	}
	a.mu.Unlock()

	a.refresh(out)
	if action == session.ActionReadNote && out.OK() {
		a.ShowInfo(out.Text)
	}
	return out
}

// saveFolders applies the folder entry text as the new folder list.
func (a *App) saveFolders() session.Outcome {
	a.mu.Lock()
	out := a.sess.SetFolders(a.folderEntry.Text)
	a.retargetWatcher()
	text := a.sess.FolderListText()
	unsaved := !out.OK() && len(a.sess.Manager().Folders()) > 0
	a.mu.Unlock()

	a.folderEntry.SetText(text)
	a.refresh(out)
	if unsaved {
		a.ShowError("Folder list not saved", out.Err)
	}
	return out
}

// followChanges refreshes the navigator for every change in the active folder
// until the watcher is stopped.
func (a *App) followChanges() {
	for change := range a.watcher.Changes() {
		a.mu.Lock()
		folder, ok := a.sess.Manager().ActiveFolder()
		if !ok || filepath.Clean(folder) != filepath.Clean(change.Folder) {
			a.mu.Unlock()
			continue
		}
		out := a.sess.Refresh()
		a.mu.Unlock()

		log.LogWithFields(log.F("path", change.Path)).Debug("notes folder changed, refreshed")
		a.refresh(out)
	}
}

// retargetWatcher points the watcher at the active folder. Callers hold mu.
func (a *App) retargetWatcher() {
	if a.watcher == nil {
		return
	}
	folder, _ := a.sess.Manager().ActiveFolder()
	if err := a.watcher.Retarget(folder); err != nil {
		log.LogWithFields(log.F("directory", folder), log.F("error", err)).Warn("could not watch notes folder")
	}
}
