package dyckprng

import (
	"fmt"

	"github.com/seehuhn/mt19937"
)

const (
	// DefaultLogLength gives flawed paths of 2^26 bits.
	DefaultLogLength = 26

	// DefaultStep arms the flawed path on one seed in every hundred.
	DefaultStep = 100

	// minLogLength is the shortest path length accepted, 2^6 bits.
	minLogLength = 6
)

// FlawedConfig configures the flawed path streaming sources.
type FlawedConfig struct {
	// LogLength is log2 of the path length in bits. Values below 6 select
	// paths of 64 bits. Zero selects DefaultLogLength.
	LogLength uint

	// Step is used by FlawedDyckMT only: one SetSeed call in every Step
	// regenerates the flawed path. Zero selects DefaultStep.
	Step uint

	// Strategy selects the flawed path construction. The zero value is
	// RunStrategy; DefaultFlawedConfig selects CrossingStrategy.
	Strategy Strategy

	// Lazy skips generating a path at construction time. The first
	// NextInt call generates one instead.
	Lazy bool
}

// DefaultFlawedConfig returns the configuration of the reference flawed
// streams: 2^26-bit paths, crossing replication, a step of 100.
func DefaultFlawedConfig() FlawedConfig {
	return FlawedConfig{
		LogLength: DefaultLogLength,
		Step:      DefaultStep,
		Strategy:  CrossingStrategy,
	}
}

// Validate checks if the configuration is valid.
func (c *FlawedConfig) Validate() error {
	if c.LogLength > 40 {
		return fmt.Errorf("dyckprng: log length %d too large: %w", c.LogLength, ErrInvalidLength)
	}
	if c.Strategy != RunStrategy && c.Strategy != CrossingStrategy {
		return fmt.Errorf("dyckprng: invalid strategy: %v", c.Strategy)
	}
	return nil
}

// halfLength returns n such that the flawed path has 4n bits.
func (c *FlawedConfig) halfLength() int {
	switch {
	case c.LogLength == 0:
		return 1 << (DefaultLogLength - 2)
	case c.LogLength < minLogLength:
		return 1 << (minLogLength - 2)
	default:
		return 1 << (c.LogLength - 2)
	}
}

func (c *FlawedConfig) step() uint {
	if c.Step == 0 {
		return DefaultStep
	}
	return c.Step
}

// pathReader hands out the bits of a flawed path 64 at a time and
// regenerates the path when fewer than 64 unread bits remain.
type pathReader struct {
	gen      *FlawedGenerator
	n        int
	strategy Strategy
	path     Path
	pos      int
	regens   int
}

func newPathReader(c FlawedConfig) *pathReader {
	return &pathReader{
		gen:      NewFlawedGenerator(defaultMTSeed),
		n:        c.halfLength(),
		strategy: c.Strategy,
	}
}

// regenerate draws a fresh path from the generator's current state.
func (r *pathReader) regenerate() {
	// n is a positive power of two and the strategy was validated, so
	// generation cannot fail.
	p, err := r.gen.GenerateWith(r.strategy, r.n)
	if err != nil {
		panic(err)
	}
	r.path = p
	r.pos = 0
	r.regens++
	traceLog("flawed stream regenerated: regens=%d bits=%d", r.regens, len(p))
}

func (r *pathReader) reseed(seed uint32) {
	r.gen.SetSeed(int64(seed))
	r.regenerate()
}

// next returns the next 64 path bits, first bit most significant.
func (r *pathReader) next() uint64 {
	if len(r.path)-r.pos < 64 {
		r.regenerate()
	}
	var v uint64
	for _, b := range r.path[r.pos : r.pos+64] {
		v <<= 1
		if b {
			v |= 1
		}
	}
	r.pos += 64
	return v
}

// FlawedDyck is a 64-bit Source whose output is read from consecutive bits
// of randomly sampled flawed paths. A new path is generated on every SetSeed
// and whenever the current one runs out of bits.
type FlawedDyck struct {
	r *pathReader
}

// NewFlawedDyck returns a FlawedDyck source for the given configuration.
func NewFlawedDyck(c FlawedConfig) (*FlawedDyck, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := &FlawedDyck{r: newPathReader(c)}
	if !c.Lazy {
		f.r.regenerate()
	}
	return f, nil
}

// SetSeed generates a new path from seed.
func (f *FlawedDyck) SetSeed(seed uint32) {
	f.r.reseed(seed)
}

// NextInt returns the next 64 bits of the current path.
func (f *FlawedDyck) NextInt() uint64 {
	return f.r.next()
}

// BitWidth returns 64.
func (f *FlawedDyck) BitWidth() int {
	return 64
}

// Regenerations returns the number of paths generated so far.
func (f *FlawedDyck) Regenerations() int {
	return f.r.regens
}

// FlawedDyckMT is a 64-bit Source that mostly behaves like MT19937-64 but,
// on one seed in every Step, serves the bits of a flawed path instead.
type FlawedDyckMT struct {
	r      *pathReader
	mt     *mt19937.MT19937
	step   uint
	seedNr uint
}

// NewFlawedDyckMT returns a FlawedDyckMT source for the given configuration.
func NewFlawedDyckMT(c FlawedConfig) (*FlawedDyckMT, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mt := mt19937.New()
	mt.Seed(defaultMTSeed)
	f := &FlawedDyckMT{
		r:    newPathReader(c),
		mt:   mt,
		step: c.step(),
	}
	if !c.Lazy {
		f.r.regenerate()
	}
	return f, nil
}

// SetSeed counts the call and either regenerates the flawed path from seed,
// on every Step-th call, or reseeds the Mersenne Twister.
func (f *FlawedDyckMT) SetSeed(seed uint32) {
	f.seedNr++
	if f.UsingPath() {
		f.r.reseed(seed)
		return
	}
	f.mt.Seed(int64(seed))
}

// NextInt returns the next value of whichever source the last SetSeed armed.
func (f *FlawedDyckMT) NextInt() uint64 {
	if f.UsingPath() {
		return f.r.next()
	}
	return f.mt.Uint64()
}

// BitWidth returns 64.
func (f *FlawedDyckMT) BitWidth() int {
	return 64
}

// UsingPath reports whether NextInt currently reads from the flawed path.
func (f *FlawedDyckMT) UsingPath() bool {
	return f.seedNr%f.step == 0
}

// Regenerations returns the number of paths generated so far.
func (f *FlawedDyckMT) Regenerations() int {
	return f.r.regens
}
