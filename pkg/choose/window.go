package choose

// clampWindow computes the start of the visible window for a paged list so
// the cursor is always on screen. The window is stable: while the cursor
// moves inside the current page the start does not change, so adjacent
// moves never jitter the list.
//
// The result is clamped into [0, length-page] even when the cursor itself
// is out of range.
func clampWindow(cursor, prevStart, length, pageSize int) int {
	page := min(pageSize, length)
	if length <= page {
		return 0
	}

	maxStart := length - page
	start := min(max(prevStart, 0), maxStart)

	if cursor < start {
		start = cursor
	} else if cursor >= start+page {
		start = cursor - page + 1
	}

	return min(max(start, 0), maxStart)
}
