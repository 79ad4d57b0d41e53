// Package ebitendraw renders collision debug rectangles onto an ebiten image.
package ebitendraw

import (
	"image/color"

	"github.com/akmonengine/hitbox/actor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 1.0

type Drawer struct {
	Screen *ebiten.Image
	CamX   float64
	CamY   float64
	Zoom   float64
}

func New(screen *ebiten.Image) *Drawer {
	return &Drawer{Screen: screen, Zoom: 1}
}

func (d *Drawer) DrawRect(bounds actor.AABB, clr color.Color) {
	if d == nil || d.Screen == nil || bounds.Empty() {
		return
	}
	x, y := d.ToScreen(bounds.Min.X(), bounds.Min.Y())
	zoom := d.zoom()
	w := float32(bounds.Width() * zoom)
	h := float32(bounds.Height() * zoom)
	vector.StrokeRect(d.Screen, float32(x), float32(y), w, h, strokeWidth, clr, false)
}

// ToScreen converts world coordinates to screen pixels.
func (d *Drawer) ToScreen(x, y float64) (float64, float64) {
	zoom := d.zoom()
	return (x - d.CamX) * zoom, (y - d.CamY) * zoom
}

func (d *Drawer) zoom() float64 {
	if d.Zoom <= 0 {
		return 1
	}
	return d.Zoom
}
