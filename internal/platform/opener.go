// Package platform holds the OS-facing sinks: opening folders in the file
// browser and writing to the system clipboard.
package platform

import (
	"fmt"
	"os/exec"
	"runtime"

	"invisinote/internal/log"
)

// OpenCommand returns the command that shows dir in the file browser on goos.
func OpenCommand(goos, dir string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{dir}, nil
	case "windows":
		return "explorer", []string{dir}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris":
		return "xdg-open", []string{dir}, nil
	default:
		return "", nil, fmt.Errorf("opening folders not supported on %s", goos)
	}
}

// Opener starts the platform file browser without waiting for it.
type Opener struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// NewOpener returns an Opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		goos:  runtime.GOOS,
		start: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open shows dir in the file browser.
func (o *Opener) Open(dir string) error {
	name, args, err := OpenCommand(o.goos, dir)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("could not start %s: %w", name, err)
	}
	if cmd.Process != nil {
		// Reap the child once the file browser hands off
		go func() { _ = cmd.Wait() }()
	}
	log.LogWithFields(log.F("directory", dir), log.F("command", name)).Debug("Opened folder")
	return nil
}
