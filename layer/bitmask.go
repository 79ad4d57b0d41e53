package layer

// Bitmask holds one bit per CollisionLayer.
type Bitmask uint32

func NewBitmask(layers ...CollisionLayer) Bitmask {
	var b Bitmask
	for _, l := range layers {
		b.SetBit(int(l))
	}
	return b
}

func (b *Bitmask) SetBit(pos int) {
	*b |= 1 << pos
}

func (b *Bitmask) ClearBit(pos int) {
	*b &^= 1 << pos
}

func (b Bitmask) GetBit(pos int) bool {
	return b&(1<<pos) != 0
}

// Mask returns the raw bit vector.
func (b Bitmask) Mask() uint32 {
	return uint32(b)
}

func (b Bitmask) IsZero() bool {
	return b == 0
}
