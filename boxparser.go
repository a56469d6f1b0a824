package a2svg

// BoxParser scans the grid for corners and attempts to close each one
// into a polygon via WallFollower. Because the search goes horizontal
// first, then vertical, a successfully closed box is always traced in
// clockwise order, which matters later for Bezier curve direction.
func (e *engine) parseBoxes() {
	e.groups.PushGroup("boxes")
	e.groups.SetOption("stroke", "black")
	e.groups.SetOption("stroke-width", "2")
	e.groups.SetOption("fill", "none")

	rows := e.grid.Rows()
	for row := 0; row < rows; row++ {
		cols := len(e.grid.rows[row])
		for col := 0; col < cols; col++ {
			ch := e.char(row, col)
			if !ch.isCorner() {
				continue
			}

			path := newPath()
			if ch == '.' || ch == '\'' {
				path.AddPoint(e.cfg.Scale, float64(col), float64(row), FlagControl)
			} else {
				path.AddPoint(e.cfg.Scale, float64(col), float64(row), FlagPoint)
			}

			e.wallFollow(path, row, col+1, DirRight, nil, 0)

			if !path.IsClosed() {
				continue
			}
			path.OrderPoints()

			if e.boxAlreadyFound(path) {
				continue
			}

			if e.cfg.DisableBlurDropShadow {
				path.SetOption("filter", "url(#dsFilterNoBlur)")
			} else {
				path.SetOption("filter", "url(#dsFilter)")
			}

			if name := e.findCommands(path); name != "" {
				path.SetID(name)
			}

			e.groups.AddObject(path)
		}
	}

	// Boxes are removed from the grid once fully discovered so they don't
	// confuse the line parser; shared corners are deferred until both
	// boxes and lines have been found.
	for _, obj := range e.groups.Group("boxes") {
		e.clearObject(obj.(*Path))
	}

	e.groups.PopGroup()
}

// boxAlreadyFound reports whether path describes the same polygon as a box
// already recorded. The wall follower can reach the same box from a
// different corner:
//
//	+---+   +---+
//	|   |   |   |
//	|   +---+   |
//	+-----------+
//
// so a box is only "new" if it doesn't share every vertex with one
// already found.
func (e *engine) boxAlreadyFound(path *Path) bool {
	newPts := path.Points()
	for _, obj := range e.groups.Group("boxes") {
		existing := obj.(*Path).Points()
		if len(existing) != len(newPts) {
			continue
		}
		shared := 0
		for _, p := range newPts {
			for _, q := range existing {
				if p.X == q.X && p.Y == q.Y {
					shared++
				}
			}
		}
		if shared == len(existing) {
			return true
		}
	}
	return false
}

// wallFollow is a right-turn-first, marking recursive wall follower. It
// assumes it is called from the top-left of a prospective box, walking
// clockwise. At each corner it first tries to turn right (the direction
// that continues the clockwise traversal); if that doesn't eventually
// close the polygon, it tries every other direction except the one it
// just came from. bucket remembers, per visited grid cell, which
// directions have already been tried from that cell in this invocation
// chain, so the search can't loop forever. Each call works on its own
// copy of bucket, so sibling recursive branches don't block each other
// from trying the same directions.
func (e *engine) wallFollow(path *Path, r, c int, dir Direction, bucket map[string]Direction, d int) {
	local := make(map[string]Direction, len(bucket)+1)
	for k, v := range bucket {
		local[k] = v
	}
	bucket = local
	d++

	dRow, dCol := dir.delta()

	cur := e.char(r, c)
	for cur.isBoxEdge(dir) {
		r += dRow
		c += dCol
		cur = e.char(r, c)
	}

	key := cellKey(r, c)
	if _, seen := bucket[key]; seen {
		return
	}

	switch {
	case cur.isBoxCorner():
		e.wallFollowCorner(path, r, c, dir, bucket, d, cur, key)
	case cur.isMarker():
		// A marker belongs to a line, not a box wall to close.
		return
	default:
		// Landed on whitespace or something else: not a closed path.
		return
	}
}

func (e *engine) wallFollowCorner(path *Path, r, c int, dir Direction, bucket map[string]Direction, d int, cur char, key string) {
	if _, seen := bucket[key]; !seen {
		bucket[key] = 0
	}

	var pointExists bool
	switch cur {
	case '.', '\'':
		pointExists = path.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagControl)
	case '+':
		pointExists = path.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagPoint)
	}

	if path.IsClosed() || pointExists {
		return
	}

	// Special case: looking for the very first turn from a '.' corner with
	// another '.' directly below — keep scanning right
	// without counting this as a real step.
	if d == 1 && cur == '.' && e.char(r+1, c) == '.' {
		e.wallFollow(path, r, c+1, dir, bucket, 0)
		return
	}

	n, s, e_, w := e.char(r-1, c), e.char(r+1, c), e.char(r, c+1), e.char(r, c-1)

	newDir := DirUndefined
	switch dir {
	case DirRight:
		if bucket[key]&DirDown == 0 && (s.isBoxEdge(DirDown) || s.isBoxCorner()) {
			if !sameRoundedCorner(cur, s) {
				newDir = DirDown
			}
		} else if d == 1 {
			// No right-hand turn available from the very first corner: this
			// can't be the start of a valid box.
			return
		}
	case DirDown:
		if bucket[key]&DirLeft == 0 && (w.isBoxEdge(DirLeft) || w.isBoxCorner()) {
			newDir = DirLeft
		}
	case DirLeft:
		if bucket[key]&DirUp == 0 && (n.isBoxEdge(DirUp) || n.isBoxCorner()) {
			if !sameRoundedCorner(cur, n) {
				newDir = DirUp
			}
		}
	case DirUp:
		if bucket[key]&DirRight == 0 && (e_.isBoxEdge(DirRight) || e_.isBoxCorner()) {
			newDir = DirRight
		}
	}

	if newDir != DirUndefined {
		dRow, dCol := newDir.delta()
		bucket[key] |= newDir
		e.wallFollow(path, r+dRow, c+dCol, newDir, bucket, d)
		if path.IsClosed() {
			return
		}
	}

	// The right-hand turn didn't close the polygon (or wasn't available).
	// Fall back to every other direction except straight back the way it
	// came, accepting the first one that closes the shape.
	if dir != DirRight && bucket[key]&DirLeft == 0 && (w.isBoxEdge(DirLeft) || w.isBoxCorner()) {
		bucket[key] |= DirLeft
		e.wallFollow(path, r, c-1, DirLeft, bucket, d)
		if path.IsClosed() {
			return
		}
	}
	if dir != DirLeft && bucket[key]&DirRight == 0 && (e_.isBoxEdge(DirRight) || e_.isBoxCorner()) {
		bucket[key] |= DirRight
		e.wallFollow(path, r, c+1, DirRight, bucket, d)
		if path.IsClosed() {
			return
		}
	}
	if dir != DirDown && bucket[key]&DirUp == 0 && (n.isBoxEdge(DirUp) || n.isBoxCorner()) && !sameRoundedCorner(cur, n) {
		bucket[key] |= DirUp
		e.wallFollow(path, r-1, c, DirUp, bucket, d)
		if path.IsClosed() {
			return
		}
	}
	if dir != DirUp && bucket[key]&DirDown == 0 && (s.isBoxEdge(DirDown) || s.isBoxCorner()) && !sameRoundedCorner(cur, s) {
		bucket[key] |= DirDown
		e.wallFollow(path, r+1, c, DirDown, bucket, d)
		if path.IsClosed() {
			return
		}
	}

	// No direction from here closes the polygon; this point was a dead
	// end (probably a line extension instead of a box wall). Back out and
	// let the caller try another direction.
	path.PopPoint()
}

// sameRoundedCorner reports whether cur and neighbor are the same rounded
// corner glyph ('.' or '\''), in which case the wall follower must not
// turn between them — two dots or two apostrophes in a row are never a
// valid top/bottom corner pair for the same box wall.
func sameRoundedCorner(cur, neighbor char) bool {
	return (cur == '.' && neighbor == '.') || (cur == '\'' && neighbor == '\'')
}

func cellKey(r, c int) string {
	return pointKey(r, c)
}
