package dyckprng

import (
	"math/rand"

	"github.com/seehuhn/mt19937"
)

// LCG is a linear congruential generator s = (A*s + B) mod M whose output
// is the low Bits bits of the state.
type LCG struct {
	M, A, B uint64
	Bits    int
	state   uint64
}

// NewLCG returns an LCG in its initial state 1.
func NewLCG(m, a, b uint64, bits int) *LCG {
	return &LCG{M: m, A: a, B: b, Bits: bits, state: 1}
}

// SetSeed sets the state to seed.
func (g *LCG) SetSeed(seed uint32) { g.state = uint64(seed) }

// NextInt advances the state.
func (g *LCG) NextInt() uint64 {
	g.state = (g.A*g.state + g.B) % g.M
	return g.state & lowMask[g.Bits]
}

// BitWidth returns Bits.
func (g *LCG) BitWidth() int { return g.Bits }

// CMRG is L'Ecuyer's combined multiple recursive generator: two order-3
// recurrences modulo primes close to 2^31, combined by subtraction.
type CMRG struct {
	x, y [3]int64
	n    int
}

const (
	cmrgXA = 63308
	cmrgXB = 183326
	cmrgXM = 2147483647
	cmrgYA = 86098
	cmrgYB = 539608
	cmrgYM = 2145483479
	cmrgZM = 2147483647
)

// NewCMRG returns a CMRG seeded with 1.
func NewCMRG() *CMRG {
	g := &CMRG{}
	g.SetSeed(1)
	return g
}

// SetSeed resets both recurrences from seed.
func (g *CMRG) SetSeed(seed uint32) {
	g.x = [3]int64{0, int64(seed), 0}
	g.y = [3]int64{0, 0, int64(seed)}
	g.n = 0
}

// NextInt advances both recurrences and combines them.
func (g *CMRG) NextInt() uint64 {
	nx := mod(cmrgXA*g.x[(g.n+1)%3]-cmrgXB*g.x[g.n], cmrgXM)
	ny := mod(cmrgYA*g.y[(g.n+2)%3]-cmrgYB*g.y[g.n], cmrgYM)
	g.x[g.n] = nx
	g.y[g.n] = ny
	g.n = (g.n + 1) % 3
	return uint64((cmrgZM + nx - ny) % cmrgZM)
}

// BitWidth returns 31.
func (g *CMRG) BitWidth() int { return 31 }

// mod returns a mod m in [0, m) for m > 0.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// lcg32 is a 32-bit LCG exposing bits 16..30 of its state, the scheme used
// by several C runtime rand() implementations.
type lcg32 struct {
	a, c  uint32
	state uint32
}

func (g *lcg32) SetSeed(seed uint32) { g.state = seed }

func (g *lcg32) NextInt() uint64 {
	g.state = g.state*g.a + g.c
	return uint64(g.state>>16) & 0x7FFF
}

func (g *lcg32) BitWidth() int { return 15 }

// NewBorland returns the LCG of the Borland C runtime rand().
func NewBorland() Source {
	return &lcg32{a: 0x015A4E35, c: 1, state: 0x015A4E36}
}

// NewVisual returns the LCG of the Microsoft Visual C++ runtime rand().
func NewVisual() Source {
	return &lcg32{a: 0x343FD, c: 0x269EC3, state: 1}
}

// RandU is the infamous IBM RANDU generator, s = 65539*s mod 2^31.
type RandU struct {
	s uint64
}

// SetSeed sets the state to seed, forced odd.
func (g *RandU) SetSeed(seed uint32) {
	g.s = uint64(seed)
	if seed%2 == 0 {
		g.s++
	}
}

// NextInt advances the state.
func (g *RandU) NextInt() uint64 {
	g.s = (65539 * g.s) % pow2[31]
	return g.s
}

// BitWidth returns 31.
func (g *RandU) BitWidth() int { return 31 }

// LibRand wraps the runtime library generator of math/rand.
type LibRand struct {
	rng *rand.Rand
}

// NewLibRand returns a LibRand seeded with 1.
func NewLibRand() *LibRand {
	return &LibRand{rng: rand.New(rand.NewSource(1))}
}

// SetSeed reseeds the library generator.
func (g *LibRand) SetSeed(seed uint32) { g.rng.Seed(int64(seed)) }

// NextInt returns a non-negative 31-bit value.
func (g *LibRand) NextInt() uint64 { return uint64(g.rng.Int31()) }

// BitWidth returns 31.
func (g *LibRand) BitWidth() int { return 31 }

// Mersenne is the 64-bit Mersenne Twister MT19937-64.
type Mersenne struct {
	mt *mt19937.MT19937
}

// NewMersenne returns an MT19937-64 source with the reference default seed.
func NewMersenne() *Mersenne {
	mt := mt19937.New()
	mt.Seed(defaultMTSeed)
	return &Mersenne{mt: mt}
}

// SetSeed reseeds the engine.
func (g *Mersenne) SetSeed(seed uint32) { g.mt.Seed(int64(seed)) }

// NextInt returns the next 64-bit output.
func (g *Mersenne) NextInt() uint64 { return g.mt.Uint64() }

// BitWidth returns 64.
func (g *Mersenne) BitWidth() int { return 64 }

// flawedPattern is the bit pattern 1001 repeated: 10(0110)*01.
const flawedPattern = 0x9999999999999999

// Flawed is a hypothetical broken generator: MT19937-64, except that on one
// seed in every hundred it emits a constant pattern.
type Flawed struct {
	Mersenne
	seedNr uint
}

// NewFlawed returns a Flawed source.
func NewFlawed() *Flawed {
	return &Flawed{Mersenne: *NewMersenne()}
}

// SetSeed counts the call and reseeds the engine.
func (g *Flawed) SetSeed(seed uint32) {
	g.seedNr++
	g.Mersenne.SetSeed(seed)
}

// NextInt returns the constant pattern on every hundredth seed.
func (g *Flawed) NextInt() uint64 {
	if g.seedNr%100 == 0 {
		return flawedPattern
	}
	return g.Mersenne.NextInt()
}
