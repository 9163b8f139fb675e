// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"sync"

	perrors "github.com/zhubert/popover/internal/errors"
	"github.com/zhubert/popover/internal/logger"
	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. Only the first call does any work; later
// calls return its result. On Linux this fails without an X11 display.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.ComponentLogger("clipboard").Warn("clipboard unavailable", "error", err)
			initErr = perrors.ClipboardUnavailable(err)
		}
	})
	return initErr
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.ComponentLogger("clipboard").Debug("copied to clipboard", "bytes", len(text))
	return nil
}
