package dyckprng

import "fmt"

// FlawedGenerator builds "flawed" paths: balanced walks of length 4n that
// spend exactly half of their time above the axis and half below, assembled
// from independently sampled Dyck excursions. The placement of the
// excursions is driven by a control sequence of length 2n, which is the
// structural bias a good randomness test should detect.
//
// The generator owns its output and control buffers; every generation call
// overwrites the results of the previous one.
type FlawedGenerator struct {
	src     shuffler
	path    Path
	ctrl    Path
	runs    []int
	permute func(Path)
}

// NewFlawedGenerator returns a generator whose engine is seeded with seed.
func NewFlawedGenerator(seed int64) *FlawedGenerator {
	g := &FlawedGenerator{src: newShuffler(seed)}
	g.permute = g.src.shuffle
	return g
}

// SetSeed reseeds the underlying engine.
func (g *FlawedGenerator) SetSeed(seed int64) {
	g.src.mt.Seed(seed)
}

// Control returns the control sequence used by the last generation call.
func (g *FlawedGenerator) Control() Path {
	return g.ctrl
}

// GenerateWith dispatches to Generate or Generate2 according to s.
func (g *FlawedGenerator) GenerateWith(s Strategy, n int) (Path, error) {
	switch s {
	case RunStrategy:
		return g.Generate(n)
	case CrossingStrategy:
		return g.Generate2(n)
	default:
		return nil, fmt.Errorf("dyckprng: unknown strategy %v", s)
	}
}

// Generate returns a flawed path of length 4n using subpath decomposition.
//
// A shuffled control sequence of n ones and n zeros is split into maximal
// runs of equal bits. A run of length k becomes a Dyck excursion of length
// 2k, above the axis for a run of ones and reflected below it for a run of
// zeros.
func (g *FlawedGenerator) Generate(n int) (Path, error) {
	if err := g.init(n); err != nil {
		return nil, err
	}

	g.ctrl = resize(g.ctrl, 2*n)
	for i := range g.ctrl {
		g.ctrl[i] = i < n
	}
	g.permute(g.ctrl)

	off := 0
	for i := 0; i < len(g.ctrl); {
		b := g.ctrl[i]
		k := 1
		for i+k < len(g.ctrl) && g.ctrl[i+k] == b {
			k++
		}
		window := g.path[off : off+2*k+1]
		sampleDyck(window, g.permute)
		if !b {
			flip(window)
		}
		off += 2 * k
		i += k
	}

	return g.finish(n, RunStrategy), nil
}

// Generate2 returns a flawed path of length 4n by crossing replication.
//
// The first n control bits are drawn at random and followed by a random
// permutation of their complement. The control sequence becomes the first
// half of the output; its excursions between zero crossings are mirrored by
// fresh Dyck excursions of the same lengths in the second half. Unlike
// Generate, excursions that were above the axis are reflected below it.
func (g *FlawedGenerator) Generate2(n int) (Path, error) {
	if err := g.init(n); err != nil {
		return nil, err
	}

	g.ctrl = resize(g.ctrl, 2*n)
	var r uint64
	for i := 0; i < n; i++ {
		if i%64 == 0 {
			r = g.src.mt.Uint64()
		}
		g.ctrl[i] = r&1 != 0
		r >>= 1
	}
	for i := n; i < 2*n; i++ {
		g.ctrl[i] = !g.ctrl[i-n]
	}
	g.permute(g.ctrl[n:])

	copy(g.path, g.ctrl)
	g.runs = crossingRuns(g.ctrl, g.runs[:0])

	off := 2 * n
	for _, l := range g.runs {
		above := l > 0
		if !above {
			l = -l
		}
		window := g.path[off : off+l+1]
		sampleDyck(window, g.permute)
		if above {
			flip(window)
		}
		off += l
	}

	return g.finish(n, CrossingStrategy), nil
}

// GenerateSeeded reseeds the generator and then calls Generate.
func (g *FlawedGenerator) GenerateSeeded(n int, seed int64) (Path, error) {
	g.SetSeed(seed)
	return g.Generate(n)
}

// Generate2Seeded reseeds the generator and then calls Generate2.
func (g *FlawedGenerator) Generate2Seeded(n int, seed int64) (Path, error) {
	g.SetSeed(seed)
	return g.Generate2(n)
}

func (g *FlawedGenerator) init(n int) error {
	if n <= 0 {
		return fmt.Errorf("flawed path half-length %d: %w", n, ErrInvalidLength)
	}
	g.path = resize(g.path, 4*n+1)
	return nil
}

// finish drops the trailing bit left over by the last excursion window.
func (g *FlawedGenerator) finish(n int, s Strategy) Path {
	g.path = g.path[:4*n]
	traceLog("flawed path generated: n=%d strategy=%v", n, s)
	return g.path
}

// crossingRuns appends the signed lengths of the excursions of ctrl to dst:
// positive for an excursion above the axis, negative for one below.
//
// An excursion is closed only when the walk returns to level 0 and the next
// bit crosses to the other side, or the sequence ends. A walk that touches
// the axis and bounces back keeps extending the same excursion.
func crossingRuns(ctrl Path, dst []int) []int {
	lvl, length := 0, 0
	for i, b := range ctrl {
		length++
		above, below := lvl > 0, lvl < 0
		lvl += step(b)
		if lvl != 0 {
			continue
		}
		last := i == len(ctrl)-1
		switch {
		case above && (last || !ctrl[i+1]):
			dst = append(dst, length)
			length = 0
		case below && (last || ctrl[i+1]):
			dst = append(dst, -length)
			length = 0
		}
	}
	return dst
}
