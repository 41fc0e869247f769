// Package errors provides standardized error handling for invisinote.
// It defines the error kinds the navigation core reports, typed errors that carry
// the folder or note path involved, and helpers for creating, wrapping and
// classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Folder error kinds
	FolderUnavailable
	NoSuchFolder
	// Collection error kinds
	EmptyCollection
	NoSuchNote
	// Note error kinds
	ReadFailed
	// Never reported to callers; bounds violations are clamped.
	OutOfBounds
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

var kindNames = map[ErrorKind]string{
	Unknown:           "unknown",
	FolderUnavailable: "folder unavailable",
	NoSuchFolder:      "no such folder",
	EmptyCollection:   "empty collection",
	NoSuchNote:        "no such note",
	ReadFailed:        "read failed",
	OutOfBounds:       "out of bounds",
	InvalidConfig:     "invalid config",
	ConfigNotFound:    "config not found",
}

// String returns a short human-readable name for the kind
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrNoSuchFolder    = NewFolderError("no folder configured", "", NoSuchFolder, nil)
	ErrEmptyCollection = NewFolderError("no notes found", "", EmptyCollection, nil)
	ErrNoSuchNote      = NewNoteError("no notes available", "", NoSuchNote, nil)
	ErrInvalidConfig   = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Message returns the message without the wrapped cause
func (e *ApplicationError) Message() string {
	return e.msg
}

// FolderError represents errors related to a notes folder
type FolderError struct {
	ApplicationError
	path string
}

// NewFolderError creates a new folder error
func NewFolderError(msg string, path string, kind ErrorKind, err error) *FolderError {
	return &FolderError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the folder error message
func (e *FolderError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the folder path associated with the error
func (e *FolderError) Path() string {
	return e.path
}

// Is matches sentinel folder errors by kind so callers can use errors.Is(err, ErrEmptyCollection)
func (e *FolderError) Is(target error) bool {
	t, ok := target.(*FolderError)
	if !ok {
		return false
	}
	return t.path == "" && t.err == nil && t.kind == e.kind
}

// NoteError represents errors related to a single note file
type NoteError struct {
	ApplicationError
	path string
}

// NewNoteError creates a new note error
func NewNoteError(msg string, path string, kind ErrorKind, err error) *NoteError {
	return &NoteError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the note error message
func (e *NoteError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the note path associated with the error
func (e *NoteError) Path() string {
	return e.path
}

// Is matches sentinel note errors by kind
func (e *NoteError) Is(target error) bool {
	t, ok := target.(*NoteError)
	if !ok {
		return false
	}
	return t.path == "" && t.err == nil && t.kind == e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first kinded error in err's chain.
// A plain wrapper with kind Unknown does not hide a more specific kind beneath it.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsFolderUnavailable checks if the error is a folder unavailable error
func IsFolderUnavailable(err error) bool {
	return KindOf(err) == FolderUnavailable
}

// IsNoSuchFolder checks if the error reports an empty folder list
func IsNoSuchFolder(err error) bool {
	return KindOf(err) == NoSuchFolder
}

// IsEmptyCollection checks if the error reports a folder with no notes
func IsEmptyCollection(err error) bool {
	return KindOf(err) == EmptyCollection
}

// IsNoSuchNote checks if the error reports a missing note
func IsNoSuchNote(err error) bool {
	return KindOf(err) == NoSuchNote
}

// IsReadFailed checks if the error is a note read failure
func IsReadFailed(err error) bool {
	return KindOf(err) == ReadFailed
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
