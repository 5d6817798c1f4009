package sidebar

// Side places the panel at the start or end edge of the layout.
type Side string

const (
	SideStart Side = "start"
	SideEnd   Side = "end"
)

// Collapse selects how the panel behaves when closed on the desktop
// surface. It never alters transition semantics, only presentation.
type Collapse string

const (
	CollapseFullHide Collapse = "full-hide"
	CollapseIcon     Collapse = "icon-only"
	CollapseNone     Collapse = "none"
)

// Ownership records who commits the desktop open slot. It is fixed for
// the lifetime of a controller instance.
type Ownership string

const (
	Uncontrolled Ownership = "uncontrolled"
	Controlled   Ownership = "controlled"
)

// Options configures a Controller. Open and OnOpenChange must be
// supplied together or not at all; supplying one without the other is
// a ConfigurationError.
type Options struct {
	// DefaultOpen seeds the desktop slot when no controlled value and
	// no persisted value exist. Nil means open.
	DefaultOpen *bool

	// Open and OnOpenChange hand ownership of the desktop slot to the
	// caller. The controller then routes every desktop mutation
	// through OnOpenChange and converges via SetExternalOpen.
	Open         *bool
	OnOpenChange func(bool)

	Side        Side
	Collapsible Collapse

	// Breakpoint overrides the detector width threshold in columns.
	// Ignored when Detector is supplied.
	Breakpoint int

	// Detector feeds compact-mode changes. Optional; the controller
	// builds its own when nil.
	Detector *Detector

	// Store persists the desktop slot across sessions. Optional.
	Store Store

	// Diag receives non-fatal persistence failures. Optional.
	Diag func(error)
}

func (o Options) defaultOpen() bool {
	if o.DefaultOpen == nil {
		return true
	}
	return *o.DefaultOpen
}

func (o Options) side() Side {
	if o.Side == "" {
		return SideStart
	}
	return o.Side
}

func (o Options) collapsible() Collapse {
	if o.Collapsible == "" {
		return CollapseFullHide
	}
	return o.Collapsible
}
