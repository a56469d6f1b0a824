package a2svg

// PointFlags records the role a Point plays within a Path: plain vertex,
// Bezier control point, marker endpoint, or an inline tick/dot decoration.
type PointFlags int

const (
	FlagPoint PointFlags = 1 << iota
	FlagControl
	FlagStartMarker
	FlagEndMarker
	FlagTick
	FlagDot
)

// Point is a single vertex of a Path, carrying both its grid coordinate
// (used for point-in-polygon tests and grid bookkeeping) and its scaled
// pixel coordinate (used for rendering).
type Point struct {
	GridX, GridY int
	X, Y         float64
	Flags        PointFlags
}

// newPoint builds a Point centered within grid cell (gx, gy) under scale.
func newPoint(scale Scale, gx, gy float64) Point {
	return Point{
		GridX: int(0.5 + gx),
		GridY: int(0.5 + gy),
		X:     gx*scale.X + scale.X/2,
		Y:     gy*scale.Y + scale.Y/2,
	}
}

func isHorizontal(p1, p2 Point) bool {
	return p1.GridY == p2.GridY
}

func isVertical(p1, p2 Point) bool {
	return p1.GridX == p2.GridX
}
