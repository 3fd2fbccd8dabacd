package dyckprng

import "fmt"

// SomeBits exposes bits leastSig..mostSig of every value produced by the
// wrapped source.
type SomeBits struct {
	inner    Source
	mostSig  int
	leastSig int
	width    int
}

// NewSomeBits wraps inner, keeping bits leastSig..mostSig inclusive.
func NewSomeBits(inner Source, mostSig, leastSig int) (*SomeBits, error) {
	if leastSig < 0 || mostSig < leastSig || mostSig >= inner.BitWidth() {
		return nil, fmt.Errorf("bits %d..%d of a %d-bit source: %w",
			leastSig, mostSig, inner.BitWidth(), ErrBitRange)
	}
	return &SomeBits{
		inner:    inner,
		mostSig:  mostSig,
		leastSig: leastSig,
		width:    mostSig - leastSig + 1,
	}, nil
}

// Shifted drops the low shift bits of every value of inner.
func Shifted(inner Source, shift int) (*SomeBits, error) {
	return NewSomeBits(inner, inner.BitWidth()-1, shift)
}

// SetSeed reseeds the wrapped source.
func (s *SomeBits) SetSeed(seed uint32) { s.inner.SetSeed(seed) }

// NextInt draws one value from the wrapped source and extracts the bits.
func (s *SomeBits) NextInt() uint64 {
	return (s.inner.NextInt() >> s.leastSig) & lowMask[s.width]
}

// BitWidth returns mostSig - leastSig + 1.
func (s *SomeBits) BitWidth() int { return s.width }

// OneByte exposes a single byte of every value produced by the wrapped source.
type OneByte struct {
	inner  Source
	byteNr int
}

// NewOneByte wraps inner, keeping byte byteNr (0 is the least significant).
func NewOneByte(inner Source, byteNr int) (*OneByte, error) {
	if byteNr < 0 || byteNr > 7 {
		return nil, fmt.Errorf("byte %d: %w", byteNr, ErrBitRange)
	}
	return &OneByte{inner: inner, byteNr: byteNr}, nil
}

// SetSeed reseeds the wrapped source.
func (b *OneByte) SetSeed(seed uint32) { b.inner.SetSeed(seed) }

// NextInt draws one value from the wrapped source and extracts the byte.
func (b *OneByte) NextInt() uint64 {
	return (b.inner.NextInt() >> (8 * b.byteNr)) & 0xFF
}

// BitWidth returns 8.
func (b *OneByte) BitWidth() int { return 8 }
