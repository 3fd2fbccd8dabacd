package dyckprng

import (
	"fmt"
	"slices"
	"sync"
)

// Options carries the parameters a registered constructor may use.
type Options struct {
	// LogLength is log2 of the string length in bits; the path based
	// sources size their paths from it. Zero selects DefaultLogLength.
	LogLength uint

	// Step is the FlawedDyckMT arming period. Zero selects DefaultStep.
	Step uint
}

// Constructor builds a fresh, independent Source.
type Constructor func(opts Options) (Source, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register makes a constructor available under name, replacing any
// previous registration.
func Register(name string, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = c
}

// New builds the source registered under name.
func New(name string, opts Options) (Source, error) {
	registryMu.RLock()
	c, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSource)
	}
	src, err := c(opts)
	if err != nil {
		return nil, fmt.Errorf("dyckprng: constructing %s: %w", name, err)
	}
	return src, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// source converts a typed constructor result, keeping a nil interface on error.
func source[T Source](s T, err error) (Source, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func plain(f func() Source) Constructor {
	return func(Options) (Source, error) { return f(), nil }
}

func lcg(m, a, b uint64, bits int) Constructor {
	return plain(func() Source { return NewLCG(m, a, b, bits) })
}

// sliced wraps a fresh inner source in a SomeBits decorator.
func sliced(inner func() Source, mostSig, leastSig int) Constructor {
	return func(Options) (Source, error) {
		return source(NewSomeBits(inner(), mostSig, leastSig))
	}
}

func shifted(inner func() Source, shift int) Constructor {
	return func(Options) (Source, error) {
		return source(Shifted(inner(), shift))
	}
}

func flawedConfig(opts Options) FlawedConfig {
	c := DefaultFlawedConfig()
	if opts.LogLength != 0 {
		c.LogLength = opts.LogLength
	}
	if opts.Step != 0 {
		c.Step = opts.Step
	}
	return c
}

func cipherSource(name string) Constructor {
	return func(Options) (Source, error) { return source(NewCipherSource(name)) }
}

const (
	ansiM = 2147483648
	ansiA = 1103515245
	ansiB = 12345

	minstdM = 2147483647
)

func init() {
	ansi := func() Source { return NewLCG(ansiM, ansiA, ansiB, 31) }
	minstd := func() Source { return NewLCG(minstdM, 16807, 0, 31) }
	newMinstd := func() Source { return NewLCG(minstdM, 48271, 0, 31) }
	cmrg := func() Source { return NewCMRG() }

	builtins := map[string]Constructor{
		"z_czapy":    lcg(1e9, 1234, 3, 8),
		"Rand":       lcg(ansiM, ansiA, ansiB, 31),
		"Rand0":      lcg(ansiM, ansiA, ansiB, 8),
		"Rand1":      sliced(ansi, 15, 8),
		"Rand3":      sliced(ansi, 30, 23),
		"Minstd":     lcg(minstdM, 16807, 0, 31),
		"Minstd0":    lcg(minstdM, 16807, 0, 8),
		"Minstd1":    sliced(minstd, 15, 8),
		"NewMinstd":  lcg(minstdM, 48271, 0, 31),
		"NewMinstd0": lcg(minstdM, 48271, 0, 8),
		"NewMinstd1": sliced(newMinstd, 15, 8),
		"NewMinstd3": sliced(newMinstd, 30, 23),
		"CMRG":       plain(cmrg),
		"CMRG0":      sliced(cmrg, 7, 0),
		"CMRG1":      sliced(cmrg, 15, 8),
		"SBorland":   shifted(NewBorland, 7),
		"SVIS":       shifted(NewVisual, 7),
		"C_PRG":      plain(func() Source { return NewLibRand() }),
		"Mersenne":   plain(func() Source { return NewMersenne() }),
		"RANDU":      plain(func() Source { return &RandU{} }),
		"zepsuty":    plain(func() Source { return NewFlawed() }),
		"Blake2":     plain(func() Source { return NewBlake2Chain() }),
		"BBS":        plain(func() Source { return NewDefaultBBS() }),
		"FlawedDyck": func(opts Options) (Source, error) {
			return source(NewFlawedDyck(flawedConfig(opts)))
		},
		"FlawedDyckMT": func(opts Options) (Source, error) {
			return source(NewFlawedDyckMT(flawedConfig(opts)))
		},
		CipherAES128CTR: cipherSource(CipherAES128CTR),
		CipherAES256CTR: cipherSource(CipherAES256CTR),
		CipherChaCha20:  cipherSource(CipherChaCha20),
	}
	for name, c := range builtins {
		Register(name, c)
	}
}
