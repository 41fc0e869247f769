package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	unsupported bool
	write       func(text string) error
}

// NewClipboard returns a Clipboard backed by the OS clipboard tools.
func NewClipboard() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// Copy places text on the clipboard.
func (c *Clipboard) Copy(text string) error {
	if c.unsupported {
		return fmt.Errorf("clipboard not available")
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
