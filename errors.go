package sidebar

// ConfigurationError indicates a mistake by the integrating code: a
// partial controlled value/callback pair, or a snapshot read with no
// active controller. It is returned immediately, never swallowed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "sidebar: " + e.Reason
}

// ErrNoController is returned by Propagator.Snapshot when no active
// controller is attached.
var ErrNoController = &ConfigurationError{Reason: "no active coordinator"}

func configErr(reason string) error {
	return &ConfigurationError{Reason: reason}
}
