package notes

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultExtension is the note file extension used when none is configured.
const DefaultExtension = ".txt"

// Matcher decides which directory entries are notes. The extension is compared
// case-insensitively; ignore patterns are matched against the name as is.
type Matcher struct {
	ext    string
	note   glob.Glob
	ignore []glob.Glob
}

// NewMatcher compiles a matcher for ext (with leading dot) and ignore globs.
func NewMatcher(ext string, ignore []string) (*Matcher, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)

	note, err := glob.Compile("*" + ext)
	if err != nil {
		return nil, fmt.Errorf("invalid note extension %q: %w", ext, err)
	}

	m := &Matcher{ext: ext, note: note}
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		m.ignore = append(m.ignore, g)
	}
	return m, nil
}

// DefaultMatcher matches *.txt and skips hidden files.
func DefaultMatcher() *Matcher {
	m, err := NewMatcher(DefaultExtension, []string{".*"})
	if err != nil {
		panic(err)
	}
	return m
}

// Extension returns the lower-cased note extension.
func (m *Matcher) Extension() string {
	return m.ext
}

// Match reports whether the file name (or path) names a note.
func (m *Matcher) Match(name string) bool {
	name = filepath.Base(name)
	if !m.note.Match(strings.ToLower(name)) {
		return false
	}
	for _, g := range m.ignore {
		if g.Match(name) {
			return false
		}
	}
	return true
}
