// Package emoji provides the small set of status glyphs used in user-facing
// messages, with plain-text fallbacks for non-interactive output.
package emoji

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Emoji pairs a glyph with its plain-text fallback
type Emoji struct {
	Glyph    string
	Fallback string
}

var (
	Error   = Emoji{"⛔", "error:"}
	Warning = Emoji{"⚠️", "warning:"}
	Wrench  = Emoji{"🔧", ""}
	Sparkle = Emoji{"✨", "done:"}
	Info    = Emoji{"💡", "info:"}
)

// String renders the glyph when stdout is an interactive terminal that can
// be expected to display it, and the fallback otherwise
func (e Emoji) String() string {
	if emojiCapable() {
		return e.Glyph
	}
	return e.Fallback
}

func emojiCapable() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	// Dumb terminals get the fallback too
	return termenv.ColorProfile() != termenv.Ascii
}
