package sidebar

// Snapshot is the immutable view handed to consumers. The two mutator
// funcs are stable per controller instance, so a snapshot only changes
// when one of the three state fields does.
type Snapshot struct {
	Mode       Mode
	Open       bool
	OpenMobile bool
	Compact    bool

	SetOpen func(bool)
	Toggle  func()
}

// Snapshot returns the cached view, rebuilding it only when open,
// openMobile or compact changed since the last read. Consumers holding
// an unchanged snapshot therefore never observe spurious novelty.
func (c *Controller) Snapshot() Snapshot {
	if !c.snapValid {
		c.snap = Snapshot{
			Mode:       c.Mode(),
			Open:       c.open,
			OpenMobile: c.openMobile,
			Compact:    c.compact,
			SetOpen:    c.setOpenFn,
			Toggle:     c.toggleFn,
		}
		c.snapValid = true
		c.snapBuilds++
	}
	return c.snap
}

// Propagator is the explicit handle consumers use to reach the active
// controller's snapshot. Reading through a propagator with no attached
// active controller is a ConfigurationError, the same misuse as
// consuming the panel outside its coordinator scope.
type Propagator struct {
	ctrl *Controller
}

func NewPropagator() *Propagator {
	return &Propagator{}
}

// Attach points the propagator at a controller. An existing attachment
// is replaced.
func (p *Propagator) Attach(c *Controller) {
	p.ctrl = c
}

// Detach disconnects the propagator; subsequent reads fail until a new
// controller is attached.
func (p *Propagator) Detach() {
	p.ctrl = nil
}

// Snapshot returns the attached controller's current view. A closed
// controller counts as inactive.
func (p *Propagator) Snapshot() (Snapshot, error) {
	if p == nil || p.ctrl == nil || p.ctrl.closed {
		return Snapshot{}, ErrNoController
	}
	return p.ctrl.Snapshot(), nil
}
