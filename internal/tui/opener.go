package tui

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// openURL is swapped in tests so nothing is launched.
var openURL = browser.OpenURL

// SystemOpener opens URLs with the platform's default browser.
type SystemOpener struct{}

func (SystemOpener) Open(url string) error {
	// the opener's own output would land on the alt screen
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	if err := openURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
