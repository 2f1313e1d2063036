// Package cli implements application.UI as plain stdout lines, the
// fallback UI for non-interactive terminals (piped output, CI, dumb
// terminals) where the bubbletea program in infrastructure/ui/tui would
// not render correctly.
package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/samir0909/flyingcarpet/application"
)

// UI writes status lines to w, one line per message, and progress updates
// coalesced to at most one line per 10% step. Safe for concurrent use.
type UI struct {
	mu         sync.Mutex
	w          io.Writer
	lastPrinted int
}

func New(w io.Writer) *UI {
	return &UI{w: w, lastPrinted: -1}
}

func (u *UI) Output(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.w, msg)
}

func (u *UI) ShowProgressBar() {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.w, "transferring...")
}

func (u *UI) UpdateProgressBar(percent int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	// Only print on 10% steps so a large transfer doesn't flood the
	// terminal with one line per chunk.
	step := percent / 10
	if step == u.lastPrinted {
		return
	}
	u.lastPrinted = step
	fmt.Fprintf(u.w, "%d%%\n", percent)
}

func (u *UI) ShowPIN(pin string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.w, "PIN: %s\n", pin)
}

func (u *UI) EnableUI() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastPrinted = -1
}

var _ application.UI = (*UI)(nil)
