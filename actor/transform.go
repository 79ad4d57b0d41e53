package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position in 2D space (y grows downward)
type Transform struct {
	Position mgl64.Vec2
}

// NewTransform creates a transform at the given coordinates
func NewTransform(x, y float64) Transform {
	return Transform{
		Position: mgl64.Vec2{x, y},
	}
}
