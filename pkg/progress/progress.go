// Package progress provides the advisory progress reporting used during
// the rendering walk.
package progress

import (
	"github.com/pterm/pterm"
)

// Reporter receives advisory progress updates. SetMessage may be dropped;
// FinishAndClear is called once after a fully successful walk and never on
// failure.
type Reporter interface {
	SetMessage(text string)
	FinishAndClear()
}

// Nop is a Reporter that discards everything. Used in tests and when
// output is not a terminal.
type Nop struct{}

func (Nop) SetMessage(string) {}
func (Nop) FinishAndClear()   {}

// Spinner reports progress through a pterm spinner that removes itself
// once the walk completes
type Spinner struct {
	spinner *pterm.SpinnerPrinter
}

// NewSpinner starts a spinner-backed reporter. If the spinner cannot be
// started the reporter silently degrades to doing nothing.
func NewSpinner() *Spinner {
	sp, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start()
	if err != nil {
		return &Spinner{}
	}
	return &Spinner{spinner: sp}
}

// SetMessage updates the spinner text to the file currently being rendered
func (s *Spinner) SetMessage(text string) {
	if s.spinner == nil {
		return
	}
	s.spinner.UpdateText(text)
}

// FinishAndClear stops the spinner and removes it from the terminal
func (s *Spinner) FinishAndClear() {
	if s.spinner == nil {
		return
	}
	_ = s.spinner.Stop()
}
