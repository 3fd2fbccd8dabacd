package dyckprng

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// DefaultFirstSeed is the first seed of the default seed sequence.
	DefaultFirstSeed = 112358

	// seedFileOffset is added to every seed read from a seed list.
	seedFileOffset = 1000000001

	// progressEvery is the number of strings between progress lines.
	progressEvery = 100
)

// RunConfig describes a batch of generated strings.
type RunConfig struct {
	// Strings is the number of strings to produce, including skipped ones.
	Strings int64

	// LogLength is log2 of the length of each string in bits, at least 6.
	LogLength uint

	// Skip is the number of seeds consumed, and strings omitted, before
	// output starts.
	Skip int64

	// Header prepends the number of written strings and the string length
	// in bits, each as a little-endian int64.
	Header bool

	// FirstSeed starts the default seed sequence. Zero selects
	// DefaultFirstSeed. Ignored when Seeds is set.
	FirstSeed uint32

	// Seeds, when non-nil, supplies whitespace separated integer seeds.
	Seeds *SeedReader

	// Progress receives a line every hundred strings. Nil disables it.
	Progress io.Writer
}

// Validate checks if the configuration is valid.
func (c *RunConfig) Validate() error {
	if c.LogLength < minLogLength || c.LogLength > 62 {
		return fmt.Errorf("dyckprng: log length %d outside %d..62: %w", c.LogLength, minLogLength, ErrInvalidLength)
	}
	if c.Skip < 0 {
		return fmt.Errorf("dyckprng: negative skip %d: %w", c.Skip, ErrInvalidLength)
	}
	if c.Strings < c.Skip {
		return fmt.Errorf("dyckprng: %d strings with %d skipped: %w", c.Strings, c.Skip, ErrInvalidLength)
	}
	return nil
}

// SeedReader reads integer seeds from a whitespace separated list.
type SeedReader struct {
	sc *bufio.Scanner
}

// NewSeedReader returns a SeedReader over r.
func NewSeedReader(r io.Reader) *SeedReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &SeedReader{sc: sc}
}

// Next returns the next integer of the list.
func (s *SeedReader) Next() (int64, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSeedFile, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of list", ErrSeedFile)
	}
	v, err := strconv.ParseInt(s.sc.Text(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeedFile, err)
	}
	return v, nil
}

// ReadSeedCount reads the leading string count of a seed list.
func (s *SeedReader) ReadSeedCount() (int64, error) {
	n, err := s.Next()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative string count %d", ErrSeedFile, n)
	}
	return n, nil
}

// seedSequence yields the seed of every string.
type seedSequence struct {
	next  uint32
	seeds *SeedReader
}

func (s *seedSequence) seed() (uint32, error) {
	if s.seeds != nil {
		v, err := s.seeds.Next()
		if err != nil {
			return 0, err
		}
		return uint32(v) + seedFileOffset, nil
	}
	seed := s.next
	s.next++
	return seed, nil
}

// Run writes cfg.Strings-cfg.Skip strings of 2^cfg.LogLength bits drawn from
// src to w. Every string starts from a fresh seed and an empty packer carry.
func Run(w io.Writer, src Source, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p, err := NewPacker(src)
	if err != nil {
		return err
	}

	count := cfg.Strings - cfg.Skip
	length := uint64(1) << cfg.LogLength
	if cfg.Header {
		var hdr [16]byte
		binary.LittleEndian.PutUint64(hdr[:8], uint64(count))
		binary.LittleEndian.PutUint64(hdr[8:], length)
		if _, err := w.Write(hdr[:]); err != nil {
			return fmt.Errorf("dyckprng: writing header: %w", err)
		}
	}

	seq := &seedSequence{next: cfg.FirstSeed, seeds: cfg.Seeds}
	if seq.next == 0 {
		seq.next = DefaultFirstSeed
	}
	for i := int64(0); i < cfg.Skip; i++ {
		if _, err := seq.seed(); err != nil {
			return fmt.Errorf("dyckprng: skipping seed %d: %w", i+1, err)
		}
	}

	for i := int64(1); i <= count; i++ {
		seed, err := seq.seed()
		if err != nil {
			return fmt.Errorf("dyckprng: seed for string %d: %w", i, err)
		}
		traceSeparator(fmt.Sprintf("string %d seed %d", i, seed))
		src.SetSeed(seed)
		if i%progressEvery == 0 && cfg.Progress != nil {
			fmt.Fprintf(cfg.Progress, "Generator: %d/%d\n", i, count)
		}
		if err := p.WriteString(w, length); err != nil {
			return fmt.Errorf("dyckprng: string %d: %w", i, err)
		}
	}
	return nil
}

// IsSeedFileError reports whether err was caused by a malformed seed list.
func IsSeedFileError(err error) bool {
	return errors.Is(err, ErrSeedFile)
}
