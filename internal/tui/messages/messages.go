package messages

import "invisinote/internal/watch"

// ReloadRequestMsg asks the model to reload the active folder.
type ReloadRequestMsg struct {
	// Keep the current note and line when they still exist
	KeepPosition bool
}

// WatchChangeMsg carries a change seen by the folder watcher.
type WatchChangeMsg struct {
	Change watch.Change
}

// WatchClosedMsg reports that the watcher stopped delivering changes.
type WatchClosedMsg struct{}

// ErrorMsg reports a failure outside a navigation action.
type ErrorMsg struct {
	Err error
}
