// Package scene describes collision scenes in YAML and drives them tick by
// tick: kinematics, lifetimes and the collision system.
package scene

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/akmonengine/hitbox"
	"github.com/akmonengine/hitbox/actor"
	"github.com/akmonengine/hitbox/layer"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

type Spec struct {
	Name     string                                          `yaml:"name"`
	World    BoundsSpec                                      `yaml:"world"`
	Tree     TreeSpec                                        `yaml:"tree"`
	Layers   map[layer.CollisionLayer][]layer.CollisionLayer `yaml:"layers"`
	Entities []EntitySpec                                    `yaml:"entities"`
}

type BoundsSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TreeSpec struct {
	Capacity int `yaml:"capacity"`
	MaxDepth int `yaml:"max_depth"`
}

type EntitySpec struct {
	Name      string               `yaml:"name"`
	Layer     layer.CollisionLayer `yaml:"layer"`
	Transform TransformSpec        `yaml:"transform"`
	Collider  ColliderSpec         `yaml:"collider"`
	Static    bool                 `yaml:"static"`
	Velocity  VelocitySpec         `yaml:"velocity"`
	// Lifetime in seconds, zero keeps the entity forever
	Lifetime     float64 `yaml:"lifetime"`
	DespawnOnHit bool    `yaml:"despawn_on_hit"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type VelocitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func Load(filename string) (*Spec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", filename, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", filename, err)
	}
	return spec, nil
}

// Default returns the embedded demo scene.
func Default() *Spec {
	spec, err := Parse(defaultScene)
	if err != nil {
		panic(err)
	}
	return spec
}

func (s *Spec) validate() error {
	for i, e := range s.Entities {
		if e.Collider.Width <= 0 || e.Collider.Height <= 0 {
			return fmt.Errorf("scene: entity %d (%s): collider needs a positive size", i, e.Name)
		}
		if e.Lifetime < 0 {
			return fmt.Errorf("scene: entity %d (%s): negative lifetime", i, e.Name)
		}
	}
	return nil
}

// Matrix builds the layer matrix of the scene, falling back to the default
// one when the scene declares none.
func (s *Spec) Matrix() (*layer.Matrix, error) {
	if len(s.Layers) == 0 {
		return layer.DefaultMatrix(), nil
	}
	m, err := layer.NewMatrix(s.Layers)
	if err != nil {
		return nil, fmt.Errorf("scene: layers: %w", err)
	}
	return m, nil
}

// Config overlays the scene settings on base.
func (s *Spec) Config(base hitbox.Config) (hitbox.Config, error) {
	cfg := base
	if s.World.Width > 0 && s.World.Height > 0 {
		cfg.Bounds = actor.NewAABB(mgl64.Vec2{s.World.X, s.World.Y}, mgl64.Vec2{s.World.Width, s.World.Height})
	}
	if s.Tree.Capacity > 0 {
		cfg.NodeCapacity = s.Tree.Capacity
	}
	if s.Tree.MaxDepth > 0 {
		cfg.MaxDepth = s.Tree.MaxDepth
	}

	m, err := s.Matrix()
	if err != nil {
		return hitbox.Config{}, err
	}
	cfg.Matrix = m
	return cfg, nil
}
