package sidebar

import "sort"

// DefaultBreakpoint is the terminal width, in columns, below which the
// compact overlay presentation takes over from the fixed panel.
const DefaultBreakpoint = 100

// Detector turns raw width observations into a compact-mode flag.
// Subscribers are notified only when the breakpoint is crossed, plus
// one synchronous emission at subscribe time so no consumer makes a
// layout decision before seeing a value.
type Detector struct {
	breakpoint int
	compact    bool
	subs       map[int]func(bool)
	nextSub    int
}

// NewDetector builds a detector for the given column breakpoint.
// Non-positive breakpoints fall back to DefaultBreakpoint.
func NewDetector(breakpoint int) *Detector {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Detector{
		breakpoint: breakpoint,
		subs:       make(map[int]func(bool)),
	}
}

// Breakpoint reports the configured column threshold.
func (d *Detector) Breakpoint() int { return d.breakpoint }

// Compact reports the current mode. A detector that has never observed
// a width reports false.
func (d *Detector) Compact() bool { return d.compact }

// Observe feeds a width sample, typically from tea.WindowSizeMsg.
// Subscribers fire only when the flag actually flips.
func (d *Detector) Observe(width int) {
	if width <= 0 {
		return
	}
	compact := width < d.breakpoint
	if compact == d.compact {
		return
	}
	d.compact = compact
	// Emit in subscription order so a consumer registered after the
	// controller always observes the already-updated compact flag.
	ids := make([]int, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := d.subs[id]; ok {
			fn(compact)
		}
	}
}

// Subscribe registers fn, emits the current value to it immediately,
// and returns a cancel func. Cancelling more than once is safe.
func (d *Detector) Subscribe(fn func(bool)) func() {
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	fn(d.compact)
	return func() {
		delete(d.subs, id)
	}
}
