package browse

import (
	"strings"
	"time"
)

// QuietPeriod is the debounce window for search input: an intent fires only
// after this long with no further keystrokes.
const QuietPeriod = 500 * time.Millisecond

// Debouncer coalesces a rapid keystroke stream into single search intents.
// Each keystroke invalidates every earlier pending intent, so at most one
// can fire per quiet period and the final text wins.
//
// The timer itself lives with the caller (a tea.Tick in the TUI); the
// Debouncer only decides whether a timer that fires is still current. This
// keeps the coalescing logic pure and the scheduled task explicitly
// cancellable: scheduling a new generation is the cancel.
type Debouncer struct {
	quiet time.Duration
	gen   int
	text  string
}

// NewDebouncer creates a Debouncer. A non-positive quiet period falls back
// to QuietPeriod.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = QuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Quiet returns the quiet period to schedule timers with.
func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}

// Trigger records a keystroke and returns the generation token the caller
// should schedule a timer for. Any token from an earlier Trigger is dead
// from this point on.
func (d *Debouncer) Trigger(text string) int {
	d.gen++
	d.text = text
	return d.gen
}

// Resolve is called when a scheduled timer fires. It returns the trimmed
// intent text and true only if gen is still the latest generation; a stale
// generation resolves to nothing.
func (d *Debouncer) Resolve(gen int) (string, bool) {
	if gen != d.gen {
		return "", false
	}
	return strings.TrimSpace(d.text), true
}
