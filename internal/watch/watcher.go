package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"invisinote/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// Change reports that notes in the watched folder changed.
type Change struct {
	Folder    string
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher follows one notes folder at a time and reports note changes,
// coalescing bursts into a single Change.
type Watcher struct {
	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Decides which file names are notes
	match func(name string) bool

	debounce time.Duration

	// Channel to receive coalesced changes
	changes chan Change

	// Channel to signal stop, and closed by the loop when it exits
	stopChan chan struct{}
	done     chan struct{}

	// Guards folder, running and closed
	mutex   sync.RWMutex
	folder  string
	running bool
	closed  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithMatcher restricts changes to file names accepted by match.
func WithMatcher(match func(name string) bool) Option {
	return func(w *Watcher) {
		if match != nil {
			w.match = match
		}
	}
}

// WithDebounce sets the coalescing window. Zero delivers every event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher that is not yet following any folder.
func New(opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		match:     func(string) bool { return true },
		debounce:  DefaultDebounce,
		changes:   make(chan Change, 10),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Retarget stops following the current folder and starts following dir.
// An empty dir only stops following.
func (w *Watcher) Retarget(dir string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return fmt.Errorf("watcher closed")
	}
	if dir != "" {
		dir = filepath.Clean(dir)
	}
	if dir == w.folder {
		return nil
	}

	if w.folder != "" {
		if err := w.fsWatcher.Remove(w.folder); err != nil {
			log.LogWithFields(log.F("directory", w.folder), log.F("error", err)).Debug("Could not remove watch")
		}
		w.folder = ""
	}
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.folder = dir
	log.LogWithFields(log.F("directory", dir)).Info("Watching folder")
	return nil
}

// Folder returns the folder being followed, or "".
func (w *Watcher) Folder() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.folder
}

// Changes returns the channel that delivers coalesced changes. It is closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins processing filesystem events.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.closed {
		return fmt.Errorf("watcher closed")
	}
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)

	log.Debug("Watcher started.")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending *Change
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			change, relevant := w.filter(event)
			if !relevant {
				continue
			}
			if w.debounce == 0 {
				w.emit(change)
				continue
			}
			pending = &change
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if pending != nil {
				w.emit(*pending)
				pending = nil
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

// filter keeps create, write, remove and rename events for notes directly
// inside the followed folder.
func (w *Watcher) filter(event fsnotify.Event) (Change, bool) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return Change{}, false
	}

	folder := w.Folder()
	if folder == "" || filepath.Dir(event.Name) != folder {
		return Change{}, false
	}
	if !w.match(filepath.Base(event.Name)) {
		return Change{}, false
	}

	// A created or written path must still be a file; removals can't be checked.
	if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
		info, err := os.Stat(event.Name)
		if err != nil {
			if !os.IsNotExist(err) {
				log.LogWithFields(log.F("file", event.Name), log.F("error", err)).Error("Error stating file")
			}
			return Change{}, false
		}
		if info.IsDir() {
			return Change{}, false
		}
	}

	return Change{
		Folder:    folder,
		Path:      event.Name,
		Op:        event.Op,
		Timestamp: time.Now(),
	}, true
}

func (w *Watcher) emit(change Change) {
	// Send non-blockingly so a slow consumer can't wedge the loop
	select {
	case w.changes <- change:
	default:
		log.LogWithFields(log.F("file", change.Path)).Warn("Change channel is full, dropped event")
	}
}

// Stop halts the watcher and closes the Changes channel. A stopped watcher
// cannot be restarted.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.running = false
	if running {
		close(w.stopChan)
	}
	w.mutex.Unlock()

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	if running {
		<-w.done
	}

	// The loop has exited, so nothing else sends on changes
	close(w.changes)
	log.Debug("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
