package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard copies text to the system clipboard. The capability may
// be missing on the host; implementations report that as an error
// rather than failing silently.
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard is the real clipboard backed by atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard available on this system")
	}
	return clipboard.WriteAll(text)
}
