package sidebar

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap holds the single global chord bound to the panel toggle.
type Keymap struct {
	Toggle key.Binding
}

// DefaultKeymap binds ctrl+b, the one chord this coordinator owns.
func DefaultKeymap() Keymap {
	return Keymap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle panel"),
		),
	}
}

// Keymap exposes the binding for help views.
func (c *Controller) Keymap() Keymap { return c.keymap }

// HandleKey runs the toggle when msg matches the chord and reports
// whether it consumed the key, so the host stops routing it further.
// Exactly one binding exists per controller and it dies with Close.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	if c.closed {
		return false
	}
	if key.Matches(msg, c.keymap.Toggle) {
		c.Toggle()
		return true
	}
	return false
}
