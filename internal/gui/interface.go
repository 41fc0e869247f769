package gui

import (
	"invisinote/internal/session"
	"invisinote/internal/watch"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Factory creates GUI instances
type Factory struct {
	session *session.Session
	watcher *watch.Watcher
}

// NewFactory creates a new GUI factory. watcher may be nil.
func NewFactory(sess *session.Session, watcher *watch.Watcher) *Factory {
	return &Factory{
		session: sess,
		watcher: watcher,
	}
}
