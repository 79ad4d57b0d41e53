package hitbox

import (
	"errors"
	"fmt"
	"log"

	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/debug"
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_NODE_CAPACITY = 5
	DEFAULT_MAX_DEPTH     = 5
)

var ErrInvalidConfig = errors.New("hitbox: invalid config")

// Config tunes a System. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Bounds of the root node of the spatial index
	Bounds       actor.AABB
	NodeCapacity int
	MaxDepth     int

	Matrix *layer.Matrix
	// Drawer receives node outlines and colliding rects, nil disables it
	Drawer debug.Drawer
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Bounds:       actor.NewAABB(mgl64.Vec2{0, 0}, mgl64.Vec2{4200, 1080}),
		NodeCapacity: DEFAULT_NODE_CAPACITY,
		MaxDepth:     DEFAULT_MAX_DEPTH,
		Matrix:       layer.DefaultMatrix(),
		Drawer:       debug.Nop{},
		Logger:       log.Default(),
	}
}

func (c Config) validate() error {
	switch {
	case c.Matrix == nil:
		return fmt.Errorf("%w: missing layer matrix", ErrInvalidConfig)
	case c.NodeCapacity <= 0:
		return fmt.Errorf("%w: node capacity %d", ErrInvalidConfig, c.NodeCapacity)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.Bounds.Empty():
		return fmt.Errorf("%w: empty world bounds", ErrInvalidConfig)
	}
	return nil
}
