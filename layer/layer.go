// Package layer declares the collision layers and the directional matrix
// describing which layers react to which.
package layer

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLayer = errors.New("layer: unknown collision layer")
	ErrMissingLayer = errors.New("layer: collision layer missing from matrix")
)

// CollisionLayer tags every collider exactly once.
type CollisionLayer uint8

const (
	Default CollisionLayer = iota
	Tile
	Player
	NPC
	Projectile

	// Count is the number of defined layers
	Count int = iota
)

var layerNames = [Count]string{
	Default:    "default",
	Tile:       "tile",
	Player:     "player",
	NPC:        "npc",
	Projectile: "projectile",
}

// All returns every defined layer in declaration order.
func All() []CollisionLayer {
	layers := make([]CollisionLayer, Count)
	for i := range layers {
		layers[i] = CollisionLayer(i)
	}
	return layers
}

func (l CollisionLayer) Valid() bool {
	return int(l) < Count
}

func (l CollisionLayer) String() string {
	if !l.Valid() {
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
	return layerNames[l]
}

// Parse resolves a layer from its name, ignoring case.
func Parse(name string) (CollisionLayer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range layerNames {
		if n == name {
			return CollisionLayer(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// UnmarshalYAML lets config files name layers instead of numbering them.
func (l *CollisionLayer) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l CollisionLayer) MarshalYAML() (interface{}, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, uint8(l))
	}
	return l.String(), nil
}
