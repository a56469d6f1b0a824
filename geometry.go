package a2svg

// pointInPolygon reports whether (x, y) lies inside the closed polygon
// described by corners, using an even-odd horizontal ray cast. Corners are
// given in grid coordinates so containment is stable regardless of scale.
//
// Each edge is treated as including its lower endpoint and excluding its
// upper one, so that an edge shared between two adjacent boxes toggles the
// ray exactly once rather than zero or two times. See
// http://alienryderflex.com/polygon/ for the derivation this follows.
func pointInPolygon(corners []Point, x, y float64) bool {
	n := len(corners)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, yj := float64(corners[i].GridY), float64(corners[j].GridY)
		xi, xj := float64(corners[i].GridX), float64(corners[j].GridX)
		if (yi < y && yj >= y || yj < y && yi >= y) && (xi <= x || xj <= x) {
			if xi+(y-yi)/(yj-yi)*(xj-xi) < x {
				inside = !inside
			}
		}
	}
	return inside
}

// boundingBox returns the smallest rectangle, in scaled pixel coordinates,
// enclosing every point in pts.
func boundingBox(pts []Point) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY = minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
