package sidebar

import (
	"github.com/google/uuid"
)

// Mode is the derived desktop presentation state. It is recomputed
// from the open slot on every read and never stored, so it cannot
// drift.
type Mode string

const (
	ModeExpanded  Mode = "expanded"
	ModeCollapsed Mode = "collapsed"
)

// Store persists the desktop open preference. Read reports a positive
// miss via ok=false so callers can distinguish "never set" from an
// explicit false. Implementations must not panic on an unavailable
// backing store; Write failures are non-fatal to the caller.
type Store interface {
	Read() (value bool, ok bool)
	Write(value bool) error
}

// Controller owns the panel open/closed state across the fixed
// desktop surface and the compact overlay surface. It is the single
// writer of both slots; everything else reads snapshots or calls the
// mutators.
//
// Controllers follow the Bubble Tea scheduling model: all mutations
// happen on the program's update goroutine, so there is no internal
// locking and mutators may be re-entered from a detector callback.
type Controller struct {
	id string

	open       bool // desktop slot
	openMobile bool // compact overlay slot, always uncontrolled
	compact    bool

	ownership Ownership
	onChange  func(bool)

	side        Side
	collapsible Collapse

	store Store
	diag  func(error)

	detector       *Detector
	cancelDetector func()

	keymap Keymap

	// cached propagator snapshot; rebuilt only when a dependency
	// actually changed
	snap       Snapshot
	snapValid  bool
	snapBuilds int

	setOpenFn func(bool)
	toggleFn  func()

	closed bool
}

// New builds a controller. The initial desktop value resolves as:
// controlled value, else persisted value, else Options.DefaultOpen.
// Nothing is committed when the options are rejected.
func New(opts Options) (*Controller, error) {
	if (opts.Open == nil) != (opts.OnOpenChange == nil) {
		return nil, configErr("controlled panel requires both Open and OnOpenChange")
	}

	c := &Controller{
		id:          uuid.NewString(),
		ownership:   Uncontrolled,
		side:        opts.side(),
		collapsible: opts.collapsible(),
		store:       opts.Store,
		diag:        opts.Diag,
		keymap:      DefaultKeymap(),
	}

	switch {
	case opts.Open != nil:
		c.ownership = Controlled
		c.onChange = opts.OnOpenChange
		c.open = *opts.Open
	default:
		if v, ok := readStore(opts.Store); ok {
			c.open = v
		} else {
			c.open = opts.defaultOpen()
		}
	}

	c.setOpenFn = c.SetOpen
	c.toggleFn = c.Toggle

	c.detector = opts.Detector
	if c.detector == nil {
		c.detector = NewDetector(opts.Breakpoint)
	}
	// Subscribing emits the current value synchronously, so compact is
	// settled before the first snapshot is built.
	c.cancelDetector = c.detector.Subscribe(c.setCompact)

	return c, nil
}

func readStore(s Store) (bool, bool) {
	if s == nil {
		return false, false
	}
	return s.Read()
}

// ID identifies this controller instance in diagnostics.
func (c *Controller) ID() string { return c.id }

func (c *Controller) Open() bool            { return c.open }
func (c *Controller) OpenMobile() bool      { return c.openMobile }
func (c *Controller) Compact() bool         { return c.compact }
func (c *Controller) Ownership() Ownership  { return c.ownership }
func (c *Controller) Side() Side            { return c.side }
func (c *Controller) Collapsible() Collapse { return c.collapsible }

// Detector returns the width detector feeding this controller, so the
// host loop can forward resize events to it.
func (c *Controller) Detector() *Detector { return c.detector }

// Mode derives the desktop presentation from the open slot, ignoring
// the overlay slot.
func (c *Controller) Mode() Mode {
	if c.open {
		return ModeExpanded
	}
	return ModeCollapsed
}

// SetOpen sets the currently authoritative slot: the desktop slot
// normally, the overlay slot while compact.
func (c *Controller) SetOpen(v bool) {
	c.apply(func(bool) bool { return v })
}

// SetOpenFunc resolves fn against the latest committed authoritative
// value at call time, never a captured one, so rapid successive calls
// cannot lose updates.
func (c *Controller) SetOpenFunc(fn func(prev bool) bool) {
	c.apply(fn)
}

// Toggle flips the currently authoritative slot.
func (c *Controller) Toggle() {
	c.apply(func(prev bool) bool { return !prev })
}

func (c *Controller) apply(fn func(bool) bool) {
	if c.closed {
		return
	}

	if c.compact {
		// Overlay state is session-local: never controlled, never
		// persisted.
		next := fn(c.openMobile)
		if next != c.openMobile {
			c.openMobile = next
			c.snapValid = false
		}
		return
	}

	next := fn(c.open)
	if c.ownership == Controlled {
		// The external owner commits; the mirror converges through
		// SetExternalOpen. The preference is still recorded so a later
		// uncontrolled session starts where the user left off.
		c.persist(next)
		c.onChange(next)
		return
	}

	if next != c.open {
		c.open = next
		c.snapValid = false
	}
	c.persist(next)
}

// SetExternalOpen converges the desktop mirror to the value committed
// by the external owner. It is the feedback half of controlled
// ownership and a no-op on uncontrolled controllers.
func (c *Controller) SetExternalOpen(v bool) {
	if c.closed || c.ownership != Controlled {
		return
	}
	if v != c.open {
		c.open = v
		c.snapValid = false
	}
}

func (c *Controller) setCompact(v bool) {
	if c.closed || v == c.compact {
		return
	}
	c.compact = v
	c.snapValid = false
}

func (c *Controller) persist(v bool) {
	if c.store == nil {
		return
	}
	// Durability is a convenience: a failed write leaves state correct
	// in memory and is at most reported to the diagnostic hook.
	if err := c.store.Write(v); err != nil && c.diag != nil {
		c.diag(err)
	}
}

// Close releases the detector subscription and deactivates the key
// binding. Idempotent. Mutators and HandleKey are inert afterwards,
// and propagator reads fail with ErrNoController.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	if c.cancelDetector != nil {
		c.cancelDetector()
		c.cancelDetector = nil
	}
	c.closed = true
	c.snapValid = false
}
