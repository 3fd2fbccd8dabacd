package dyckprng

import (
	"fmt"
	"math/big"
)

// Default Blum-Blum-Shub factors: the Mersenne primes 2^89-1 and 2^127-1,
// both congruent to 3 mod 4. Their product is trivially factorable, which is
// irrelevant for test vector generation.
var (
	bbsDefaultP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1))
	bbsDefaultQ = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// BBS is the Blum-Blum-Shub quadratic residue generator x' = x^2 mod M.
// Each step outputs the low Bits bits of the new residue.
type BBS struct {
	m     *big.Int
	x     *big.Int
	width int
	mask  *big.Int
}

// NewBBS returns a generator with modulus p*q emitting width bits per step.
// p and q must be distinct probable primes congruent to 3 mod 4 and width
// must be in 1..8.
func NewBBS(p, q *big.Int, width int) (*BBS, error) {
	if width < 1 || width > 8 {
		return nil, fmt.Errorf("bbs: width %d: %w", width, ErrBadWidth)
	}
	three, four := big.NewInt(3), big.NewInt(4)
	for _, f := range []*big.Int{p, q} {
		if new(big.Int).Mod(f, four).Cmp(three) != 0 || !f.ProbablyPrime(20) {
			return nil, fmt.Errorf("bbs: factor %v: %w", f, ErrBadModulus)
		}
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("bbs: equal factors: %w", ErrBadModulus)
	}
	g := &BBS{
		m:     new(big.Int).Mul(p, q),
		x:     new(big.Int),
		width: width,
		mask:  new(big.Int).SetUint64(lowMask[width]),
	}
	g.SetSeed(0)
	return g, nil
}

// NewDefaultBBS returns a one-bit generator over the default modulus.
func NewDefaultBBS() *BBS {
	g, err := NewBBS(bbsDefaultP, bbsDefaultQ, 1)
	if err != nil {
		panic(err)
	}
	return g
}

// SetSeed sets x0 = (seed+2)^2 mod M. Adding 2 keeps the start away from
// the fixed points 0 and 1; both factors exceed 2^32 so the start is always
// coprime to M.
func (g *BBS) SetSeed(seed uint32) {
	s := new(big.Int).SetUint64(uint64(seed) + 2)
	g.x.Mul(s, s).Mod(g.x, g.m)
}

// NextInt squares the state and returns its low bits.
func (g *BBS) NextInt() uint64 {
	g.x.Mul(g.x, g.x).Mod(g.x, g.m)
	return new(big.Int).And(g.x, g.mask).Uint64()
}

// BitWidth returns the configured width.
func (g *BBS) BitWidth() int { return g.width }
