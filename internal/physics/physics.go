// Package physics provides collision detection and distance utilities.
package physics

import "github.com/graeme-lockley/cursor-asteroids/internal/geom"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b geom.Vec) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b geom.Vec) float64 {
	return b.Sub(a).LenSquared()
}

// PointInCircle checks if a point is within radius of a circle center.
func PointInCircle(p, center geom.Vec, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(c1 geom.Vec, r1 float64, c2 geom.Vec, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}
