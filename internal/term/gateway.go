// Package term is the TerminalGateway and InputDecoder of spec.md §1/§4:
// the two components the spec explicitly calls "external, interfaces
// only" — raw-mode toggling, alternate-screen entry/exit, window-size
// query, and byte-to-Input decoding.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Gateway owns the terminal's raw-mode state and alternate screen for the
// lifetime of the program, per spec.md §5 ("only the foreground actor
// mutates [raw-mode attributes], and only during the commit handler").
type Gateway struct {
	fd       int
	saved    *term.State
	out      io.Writer
	profile  termenv.Profile
}

// NewGateway returns a Gateway bound to stdin/stdout.
func NewGateway() *Gateway {
	return &Gateway{
		fd:      int(os.Stdin.Fd()),
		out:     os.Stdout,
		profile: termenv.ColorProfile(),
	}
}

// EnterRaw puts the terminal into raw mode, saving the previous attributes
// so Restore can undo it. Called once at startup and again after the
// commit handler yields the terminal back.
func (g *Gateway) EnterRaw() error {
	saved, err := term.MakeRaw(g.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	g.saved = saved
	return nil
}

// Restore restores the terminal attributes saved by the most recent
// EnterRaw call.
func (g *Gateway) Restore() error {
	if g.saved == nil {
		return nil
	}
	if err := term.Restore(g.fd, g.saved); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the terminal's alternate screen buffer and
// hides the cursor.
func (g *Gateway) EnterAltScreen() {
	if g.profile == termenv.Ascii {
		return
	}
	fmt.Fprint(g.out, "\x1b[?1049h\x1b[?25l")
}

// ExitAltScreen restores the primary screen buffer and shows the cursor.
func (g *Gateway) ExitAltScreen() {
	if g.profile == termenv.Ascii {
		return
	}
	fmt.Fprint(g.out, "\x1b[?25h\x1b[?1049l")
}

// Size returns the current terminal width and height in character cells.
func (g *Gateway) Size() (width, height int, err error) {
	w, h, err := term.GetSize(g.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	return w, h, nil
}

// Paint writes s to the terminal, homing the cursor first so each frame
// overwrites the last in place.
func (g *Gateway) Paint(s string) {
	fmt.Fprint(g.out, "\x1b[H"+s)
}
