package sidebar

// ShouldShowHint decides whether a menu item needs its auxiliary hint
// rendered. Only the collapsed desktop presentation hides item labels;
// the overlay and the expanded panel show full content inline.
func ShouldShowHint(compact bool, mode Mode, mobile bool) bool {
	if mobile {
		return false
	}
	return mode == ModeCollapsed
}
