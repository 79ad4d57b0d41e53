package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewAABB builds a box from its top-left corner and its size
func NewAABB(position, size mgl64.Vec2) AABB {
	return AABB{Min: position, Max: position.Add(size)}
}

func (a AABB) Width() float64 {
	return a.Max.X() - a.Min.X()
}

func (a AABB) Height() float64 {
	return a.Max.Y() - a.Min.Y()
}

func (a AABB) Size() mgl64.Vec2 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Center() mgl64.Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Empty reports a box with no area
func (a AABB) Empty() bool {
	return a.Width() <= 0 || a.Height() <= 0
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Contains checks if other lies entirely inside the AABB
func (a AABB) Contains(other AABB) bool {
	return other.Min.X() >= a.Min.X() && other.Max.X() <= a.Max.X() &&
		other.Min.Y() >= a.Min.Y() && other.Max.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap or touch. Used by the broad phase,
// where reporting too much is harmless.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// Intersection returns the overlap depth on each axis; both components are
// positive only when the boxes share some area.
func (a AABB) Intersection(other AABB) mgl64.Vec2 {
	return mgl64.Vec2{
		math.Min(a.Max.X(), other.Max.X()) - math.Max(a.Min.X(), other.Min.X()),
		math.Min(a.Max.Y(), other.Max.Y()) - math.Max(a.Min.Y(), other.Min.Y()),
	}
}

func (a AABB) Translate(delta mgl64.Vec2) AABB {
	return AABB{Min: a.Min.Add(delta), Max: a.Max.Add(delta)}
}

// Quadrants splits the box into its four quarters: top-left, top-right,
// bottom-left, bottom-right (y grows downward).
func (a AABB) Quadrants() [4]AABB {
	c := a.Center()
	return [4]AABB{
		{Min: a.Min, Max: c},
		{Min: mgl64.Vec2{c.X(), a.Min.Y()}, Max: mgl64.Vec2{a.Max.X(), c.Y()}},
		{Min: mgl64.Vec2{a.Min.X(), c.Y()}, Max: mgl64.Vec2{c.X(), a.Max.Y()}},
		{Min: c, Max: a.Max},
	}
}
