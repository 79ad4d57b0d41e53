// Package debug holds the visualization hook used by the collision system.
// Nothing drawn here has any effect on the simulation.
package debug

import (
	"image/color"

	"github.com/akmonengine/hitbox/actor"
	"golang.org/x/image/colornames"
)

var (
	// NodeColor outlines spatial index nodes
	NodeColor color.Color = colornames.Lightgreen
	// ContactColor outlines colliders found overlapping this tick
	ContactColor color.Color = colornames.Red
	// ColliderColor outlines idle colliders
	ColliderColor color.Color = colornames.White
)

// Drawer renders debug rectangles in world coordinates.
type Drawer interface {
	DrawRect(bounds actor.AABB, clr color.Color)
}

// Nop discards every call.
type Nop struct{}

func (Nop) DrawRect(actor.AABB, color.Color) {}

// Rect is one recorded DrawRect call.
type Rect struct {
	Bounds actor.AABB
	Color  color.Color
}

// Recorder keeps every rectangle it is asked to draw until Reset. Frame
// loops use it as a buffer between the simulation tick and the renderer.
type Recorder struct {
	Rects []Rect
}

func (r *Recorder) DrawRect(bounds actor.AABB, clr color.Color) {
	r.Rects = append(r.Rects, Rect{Bounds: bounds, Color: clr})
}

func (r *Recorder) Reset() {
	r.Rects = r.Rects[:0]
}

// Count returns how many rectangles were drawn with clr.
func (r *Recorder) Count(clr color.Color) int {
	n := 0
	for _, rect := range r.Rects {
		if sameColor(rect.Color, clr) {
			n++
		}
	}
	return n
}

// Replay forwards the recorded rectangles to another drawer.
func (r *Recorder) Replay(d Drawer) {
	for _, rect := range r.Rects {
		d.DrawRect(rect.Bounds, rect.Color)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
