package a2svg

// clearObject erases obj's edges and markers from the grid so that it
// doesn't confuse whichever parser runs next. Corners are deliberately
// left in place — they may be shared with another box or a connecting
// line — and are instead queued in e.clearCorners, to be blanked only
// once both box and line parsing have finished.
func (e *engine) clearObject(obj *Path) {
	points := obj.Points()
	closed := obj.IsClosed()
	n := len(points)

	for i := 0; i < n; i++ {
		p := points[i]

		var next *Point
		if i == n-1 {
			if closed {
				next = &points[0]
			}
		} else {
			next = &points[i+1]
		}
		if next == nil {
			continue
		}

		switch {
		case p.GridX == next.GridX:
			lo, hi := minMax(p.GridY, next.GridY)
			e.clearRun(func(j int) (row, col int) { return j, p.GridX }, lo, hi)
		case p.GridY == next.GridY:
			lo, hi := minMax(p.GridX, next.GridX)
			e.clearRun(func(j int) (row, col int) { return p.GridY, j }, lo, hi)
		}
	}
}

func minMax(a, b int) (lo, hi int) {
	if a < b {
		return a, b
	}
	return b, a
}

// clearRun walks the inclusive [lo, hi] run produced by cell, blanking
// edges and markers, deferring corners, and restoring a tick cell to a
// plain '+' corner so a later line crossing it can still pass through;
// box parsing has already finished by the time a line is cleared.
func (e *engine) clearRun(cell func(j int) (row, col int), lo, hi int) {
	for j := lo; j <= hi; j++ {
		row, col := cell(j)
		ch := e.char(row, col)
		switch {
		case ch.isTick():
			e.grid.Set(row, col, '+')
		case ch.isEdge(DirUndefined) || ch.isMarker():
			e.grid.Blank(row, col)
		case ch.isCorner():
			e.clearCorners = append(e.clearCorners, [2]int{row, col})
		}
	}
}
