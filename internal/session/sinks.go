package session

import "invisinote/internal/errors"

// Clipboard receives text the user asked to copy.
type Clipboard interface {
	Copy(text string) error
}

// Opener shows a folder in the platform file browser.
type Opener interface {
	Open(path string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) Copy(text string) error { return f(text) }

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error { return f(path) }

var (
	errNoClipboard = errors.New("clipboard not available")
	errNoOpener    = errors.New("folder opener not available")
)

type noClipboard struct{}

func (noClipboard) Copy(string) error { return errNoClipboard }

type noOpener struct{}

func (noOpener) Open(string) error { return errNoOpener }
