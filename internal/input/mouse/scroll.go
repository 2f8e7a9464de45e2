package mouse

// ScrollLines converts a wheel event into a signed line delta.
// Negative values scroll up. Non-scroll events return 0.
func ScrollLines(ev Event, cfg Config) int {
	if !ev.Button.IsScroll() || ev.Action != ActionPress {
		return 0
	}
	lines := cfg.ScrollLines
	if ev.Modifiers.HasShift() {
		lines = cfg.ScrollLinesShift
	}
	if lines < 1 {
		lines = 1
	}
	if ev.Button == ButtonScrollUp {
		return -lines
	}
	return lines
}
