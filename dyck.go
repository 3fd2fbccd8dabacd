package dyckprng

import (
	"fmt"
	"math/rand/v2"

	"github.com/seehuhn/mt19937"
)

// defaultMTSeed is the seed MT19937-64 uses when none is given.
const defaultMTSeed = 5489

// shuffler couples an MT19937-64 engine with the Fisher-Yates shuffle of
// math/rand/v2. rand.Rand keeps no state besides its source, so reseeding
// the engine resets the whole stream.
type shuffler struct {
	mt  *mt19937.MT19937
	rng *rand.Rand
}

func newShuffler(seed int64) shuffler {
	mt := mt19937.New()
	mt.Seed(seed)
	return shuffler{mt: mt, rng: rand.New(mt)}
}

func (s shuffler) shuffle(p Path) {
	s.rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
}

// DyckGenerator samples uniformly random Dyck paths.
//
// The generator owns a single working buffer; each call to Generate
// overwrites the path returned by the previous call.
type DyckGenerator struct {
	src     shuffler
	bits    Path
	permute func(Path)
}

// NewDyckGenerator returns a generator whose engine is seeded with seed.
func NewDyckGenerator(seed int64) *DyckGenerator {
	g := &DyckGenerator{src: newShuffler(seed)}
	g.permute = g.src.shuffle
	return g
}

// SetSeed reseeds the underlying engine.
func (g *DyckGenerator) SetSeed(seed int64) {
	g.src.mt.Seed(seed)
}

// Generate returns a uniformly random Dyck path of half-length n, i.e. of
// length 2n. n == 0 yields an empty path.
func (g *DyckGenerator) Generate(n int) (Path, error) {
	if n < 0 {
		return nil, fmt.Errorf("dyck path half-length %d: %w", n, ErrInvalidLength)
	}

	g.bits = resize(g.bits, 2*n+1)
	sampleDyck(g.bits, g.permute)
	g.bits = g.bits[:2*n]

	traceLog("dyck path generated: n=%d", n)
	return g.bits, nil
}

// GenerateSeeded reseeds the generator and then calls Generate.
func (g *DyckGenerator) GenerateSeeded(n int, seed int64) (Path, error) {
	g.SetSeed(seed)
	return g.Generate(n)
}

// resize returns a buffer of length n reusing p's storage when possible.
func resize(p Path, n int) Path {
	if cap(p) < n {
		return make(Path, n)
	}
	return p[:n]
}
