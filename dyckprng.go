// Package dyckprng manufactures long bit streams with controlled statistical
// properties, used as test vectors when evaluating the power of randomness
// test suites.
//
// The package combines three pieces:
//
//   - a family of interchangeable integer sources of varying output width
//     (Source), looked up by name through a registry;
//   - a Packer that turns any Source into a continuous stream of 64-bit words;
//   - Dyck path and "flawed path" generators that sample balanced bit
//     sequences, either uniformly or with a deliberate structural bias.
//
// Example usage:
//
//	src, err := dyckprng.New("FlawedDyckMT", dyckprng.Options{LogLength: 20})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src.SetSeed(112358)
//	p, err := dyckprng.NewPacker(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	word := p.NextWord()
//
// None of the generators is safe for concurrent use. Run independent
// instances with disjoint seeds when parallelism is needed.
package dyckprng

import "fmt"

// Source is a pseudo-random integer source.
//
// NextInt returns a value that uses only its low BitWidth() bits. BitWidth is
// constant for the lifetime of the source. SetSeed deterministically resets
// all derived state.
type Source interface {
	SetSeed(seed uint32)
	NextInt() uint64
	BitWidth() int
}

var (
	// pow2[i] = 2^i
	pow2 = func() (t [64]uint64) {
		for i := range t {
			t[i] = 1 << i
		}
		return t
	}()

	// lowMask[i] = 2^i - 1, lowMask[64] has every bit set
	lowMask = func() (t [65]uint64) {
		for i := 1; i < 64; i++ {
			t[i] = pow2[i] - 1
		}
		t[64] = ^uint64(0)
		return t
	}()
)

// Strategy selects how a flawed path is assembled from Dyck sub-paths.
type Strategy int

const (
	// RunStrategy decomposes a shuffled control sequence into maximal runs
	// of equal bits and places one Dyck excursion per run.
	RunStrategy Strategy = iota

	// CrossingStrategy copies a random control sequence verbatim and
	// replicates its zero-crossing structure in the second half.
	CrossingStrategy
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case RunStrategy:
		return "RunStrategy"
	case CrossingStrategy:
		return "CrossingStrategy"
	default:
		return fmt.Sprintf("Strategy(%d)", s)
	}
}
