package layer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Matrix stores, for each layer, the set of layers it reacts to.
// The test is directional: Reacts(a, b) says nothing about Reacts(b, a).
type Matrix struct {
	masks [Count]Bitmask
}

// Pair is an ordered (From reacts to To) relation.
type Pair struct {
	From CollisionLayer
	To   CollisionLayer
}

func (p Pair) String() string {
	return p.From.String() + "->" + p.To.String()
}

// NewMatrix builds an immutable matrix. Every defined layer needs an entry,
// even an empty one.
func NewMatrix(entries map[CollisionLayer][]CollisionLayer) (*Matrix, error) {
	m := &Matrix{}
	for l, reacts := range entries {
		if !l.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, uint8(l))
		}
		for _, other := range reacts {
			if !other.Valid() {
				return nil, fmt.Errorf("%w: %d in mask of %s", ErrUnknownLayer, uint8(other), l)
			}
			m.masks[l].SetBit(int(other))
		}
	}
	for _, l := range All() {
		if _, ok := entries[l]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingLayer, l)
		}
	}
	return m, nil
}

// DefaultMatrix returns the stock configuration. NPC has an explicit empty mask:
// players react to NPCs, NPCs do not react back.
func DefaultMatrix() *Matrix {
	m, err := NewMatrix(map[CollisionLayer][]CollisionLayer{
		Default:    {Default},
		Tile:       {},
		Player:     {Default, Tile, NPC},
		NPC:        {},
		Projectile: {Tile, NPC},
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Mask returns the reaction mask of l. Asking for an undefined layer is a
// programming error.
func (m *Matrix) Mask(l CollisionLayer) Bitmask {
	if !l.Valid() {
		panic(fmt.Sprintf("layer: no matrix entry for %s", l))
	}
	return m.masks[l]
}

// Reacts reports whether a collider on l responds to a collider on other.
func (m *Matrix) Reacts(l, other CollisionLayer) bool {
	if !other.Valid() {
		return false
	}
	return m.Mask(l).GetBit(int(other))
}

// Asymmetries lists every pair where From reacts to To but To ignores From.
func (m *Matrix) Asymmetries() []Pair {
	var pairs []Pair
	for _, a := range All() {
		for _, b := range All() {
			if a == b {
				continue
			}
			if m.Reacts(a, b) && !m.Reacts(b, a) {
				pairs = append(pairs, Pair{From: a, To: b})
			}
		}
	}
	return pairs
}

// Entries converts the matrix back into its declarative form.
func (m *Matrix) Entries() map[CollisionLayer][]CollisionLayer {
	entries := make(map[CollisionLayer][]CollisionLayer, Count)
	for _, l := range All() {
		reacts := []CollisionLayer{}
		for _, other := range All() {
			if m.masks[l].GetBit(int(other)) {
				reacts = append(reacts, other)
			}
		}
		entries[l] = reacts
	}
	return entries
}

// ParseMatrix decodes a YAML mapping of layer name to the layers it reacts to:
//
//	player: [default, tile, npc]
//	tile: []
func ParseMatrix(data []byte) (*Matrix, error) {
	var entries map[CollisionLayer][]CollisionLayer
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("layer: unmarshal matrix: %w", err)
	}
	return NewMatrix(entries)
}

func LoadMatrix(filename string) (*Matrix, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("layer: load %s: %w", filename, err)
	}
	m, err := ParseMatrix(data)
	if err != nil {
		return nil, fmt.Errorf("layer: %s: %w", filename, err)
	}
	return m, nil
}
