package dyckprng

import (
	"encoding/binary"

	"github.com/opd-ai/go-dyckprng/internal"
)

// Blake2Chain is a deterministic 64-bit source based on Blake2b.
//
// The generator maintains a 64-byte state that is repeatedly hashed
// with Blake2b-512 to produce a stream of pseudo-random words.
type Blake2Chain struct {
	data [64]byte // Current Blake2b-512 output
	pos  int      // Position in current output (0-64)
}

// NewBlake2Chain returns a Blake2Chain seeded with 0.
func NewBlake2Chain() *Blake2Chain {
	g := &Blake2Chain{}
	g.SetSeed(0)
	return g
}

// SetSeed hashes the little-endian seed to get the initial state.
func (g *Blake2Chain) SetSeed(seed uint32) {
	g.data = internal.Blake2b512(internal.SeedBytes(seed))
	g.pos = 64 // Force generation on first use
}

// generate hashes the current state to get the next state.
func (g *Blake2Chain) generate() {
	g.data = internal.Blake2b512(g.data[:])
	g.pos = 0
}

// NextInt returns the next 8 bytes of the chain in little-endian format.
func (g *Blake2Chain) NextInt() uint64 {
	if g.pos+8 > 64 {
		g.generate()
	}
	v := binary.LittleEndian.Uint64(g.data[g.pos:])
	g.pos += 8
	return v
}

// BitWidth returns 64.
func (g *Blake2Chain) BitWidth() int { return 64 }
