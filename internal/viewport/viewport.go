// Package viewport classifies the client's window size into one of two
// layout modes. Compact mode swaps the persistent side panel for a
// dismissible overlay; nothing else in the console may write to it.
package viewport

// CompactWidthThreshold is the logical-pixel width below which the
// console renders its compact layout.
const CompactWidthThreshold = 768

// Observer holds the current layout mode for one session. Each width
// signal recomputes the mode independently — no debouncing, no
// hysteresis — so the mode flips on the very next signal that crosses
// the threshold.
type Observer struct {
	compact bool
}

// NewObserver classifies the initial width reported at bootstrap.
func NewObserver(initialWidth int) *Observer {
	return &Observer{compact: initialWidth < CompactWidthThreshold}
}

// Observe records a new width signal and returns the resulting mode.
func (o *Observer) Observe(width int) bool {
	o.compact = width < CompactWidthThreshold
	return o.compact
}

// IsCompact returns the current layout mode.
func (o *Observer) IsCompact() bool {
	return o.compact
}
