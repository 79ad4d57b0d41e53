// Package termdraw renders collision debug rectangles as box outlines on a
// terminal screen.
package termdraw

import (
	"image/color"
	"math"

	"github.com/akmonengine/hitbox/actor"
	"github.com/gdamore/tcell/v2"
)

// Drawer maps world units to terminal cells: one cell covers CellWidth by
// CellHeight world units, with OriginX/OriginY at the top-left cell.
type Drawer struct {
	Screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	OriginX    float64
	OriginY    float64
}

func New(screen tcell.Screen, cellWidth, cellHeight float64) *Drawer {
	return &Drawer{Screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

func (d *Drawer) DrawRect(bounds actor.AABB, clr color.Color) {
	if d == nil || d.Screen == nil || d.CellWidth <= 0 || d.CellHeight <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))

	x0, y0 := d.ToCell(bounds.Min.X(), bounds.Min.Y())
	x1, y1 := d.ToCell(bounds.Max.X(), bounds.Max.Y())
	// the max edge is exclusive in cell space
	x1 = max(x0, x1-1)
	y1 = max(y0, y1-1)

	if x0 == x1 && y0 == y1 {
		d.set(x0, y0, '□', style)
		return
	}
	for x := x0; x <= x1; x++ {
		d.set(x, y0, tcell.RuneHLine, style)
		d.set(x, y1, tcell.RuneHLine, style)
	}
	for y := y0; y <= y1; y++ {
		d.set(x0, y, tcell.RuneVLine, style)
		d.set(x1, y, tcell.RuneVLine, style)
	}
	d.set(x0, y0, tcell.RuneULCorner, style)
	d.set(x1, y0, tcell.RuneURCorner, style)
	d.set(x0, y1, tcell.RuneLLCorner, style)
	d.set(x1, y1, tcell.RuneLRCorner, style)
}

// ToCell converts world coordinates to a terminal cell.
func (d *Drawer) ToCell(x, y float64) (int, int) {
	return int(math.Floor((x - d.OriginX) / d.CellWidth)), int(math.Floor((y - d.OriginY) / d.CellHeight))
}

func (d *Drawer) set(x, y int, r rune, style tcell.Style) {
	w, h := d.Screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	d.Screen.SetContent(x, y, r, nil, style)
}
