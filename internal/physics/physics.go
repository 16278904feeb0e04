// Package physics provides point-in-shape hit tests used for rasterising.
package physics

import "math"

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// PointInRoundedRect checks if a point lies inside the rectangle at (x, y)
// with size w x h whose corners are rounded with radius r.
func PointInRoundedRect(px, py, x, y, w, h, r float64) bool {
	if px < x || px > x+w || py < y || py > y+h {
		return false
	}
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return true
	}

	// Nearest point on the inner rectangle; outside the corner arcs the
	// distance to it exceeds r.
	cx := math.Max(x+r, math.Min(px, x+w-r))
	cy := math.Max(y+r, math.Min(py, y+h-r))
	return PointInCircle(px, py, cx, cy, r)
}
