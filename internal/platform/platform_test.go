package platform

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"windows", "explorer"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := OpenCommand(tt.goos, "/notes")
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, []string{"/notes"}, args)
		})
	}

	_, _, err := OpenCommand("plan9", "/notes")
	assert.Error(t, err)
}

func TestOpenerStartsCommand(t *testing.T) {
	var started []string
	o := &Opener{goos: "linux", start: func(cmd *exec.Cmd) error {
		started = cmd.Args
		return nil
	}}

	require.NoError(t, o.Open("/home/me/notes"))
	assert.Equal(t, []string{"xdg-open", "/home/me/notes"}, started)

	o.start = func(*exec.Cmd) error { return fmt.Errorf("not found") }
	err := o.Open("/home/me/notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xdg-open")

	o.goos = "plan9"
	assert.Error(t, o.Open("/x"))
}

func TestClipboardCopy(t *testing.T) {
	var got string
	c := &Clipboard{write: func(text string) error {
		got = text
		return nil
	}}
	require.NoError(t, c.Copy("a line"))
	assert.Equal(t, "a line", got)

	c.write = func(string) error { return fmt.Errorf("no xclip") }
	assert.ErrorContains(t, c.Copy("x"), "no xclip")

	c.unsupported = true
	assert.EqualError(t, c.Copy("x"), "clipboard not available")
}
