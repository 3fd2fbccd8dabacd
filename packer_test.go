package dyckprng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed list of values of a fixed width.
type sequenceSource struct {
	values []uint64
	width  int
	pos    int
	seeds  []uint32
}

func (s *sequenceSource) SetSeed(seed uint32) {
	s.seeds = append(s.seeds, seed)
	s.pos = 0
}

func (s *sequenceSource) NextInt() uint64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *sequenceSource) BitWidth() int { return s.width }

// referenceBits concatenates the low width bits of values, least
// significant bit first.
func referenceBits(values []uint64, width int) []bool {
	var bits []bool
	for _, v := range values {
		for i := 0; i < width; i++ {
			bits = append(bits, v>>i&1 == 1)
		}
	}
	return bits
}

func wordBits(words []uint64) []bool {
	var bits []bool
	for _, w := range words {
		for i := 0; i < 64; i++ {
			bits = append(bits, w>>i&1 == 1)
		}
	}
	return bits
}

func TestPackerWidthFiveRoundTrip(t *testing.T) {
	values := make([]uint64, 0, 128)
	for i := 0; i < 128; i++ {
		values = append(values, uint64(i*7+3)%32)
	}
	src := &sequenceSource{values: values, width: 5}
	p, err := NewPacker(src)
	require.NoError(t, err)

	// 10 words hold 128 samples of 5 bits
	words := make([]uint64, 10)
	for i := range words {
		words[i] = p.NextWord()
	}

	got, err := UnpackWords(words, 5, 128)
	require.NoError(t, err)
	require.Equal(t, values, got)
	require.Equal(t, referenceBits(values, 5), wordBits(words))
}

func TestPackerCarryAcrossWords(t *testing.T) {
	// 13 samples of 5 bits overflow the first word by one bit: the top bit
	// of the thirteenth sample opens the second word.
	values := make([]uint64, 26)
	values[12] = 0x10
	src := &sequenceSource{values: values, width: 5}
	p, err := NewPacker(src)
	require.NoError(t, err)

	require.Equal(t, uint64(0), p.NextWord())
	require.Equal(t, 1, p.filled)
	require.Equal(t, uint64(1), p.carry)
	require.Equal(t, uint64(1), p.NextWord()&1)
}

func TestPackerAgainstReference(t *testing.T) {
	for _, width := range []int{1, 3, 7, 8, 15, 31, 33, 63, 64} {
		values := make([]uint64, 300)
		x := uint64(0x9E3779B97F4A7C15)
		for i := range values {
			x ^= x << 13
			x ^= x >> 7
			x ^= x << 17
			values[i] = x & lowMask[width]
		}
		src := &sequenceSource{values: values, width: width}
		p, err := NewPacker(src)
		require.NoError(t, err)

		nwords := len(values) * width / 64
		words := make([]uint64, nwords)
		for i := range words {
			words[i] = p.NextWord()
		}
		want := referenceBits(values, width)[:64*nwords]
		require.Equal(t, want, wordBits(words), "width %d", width)
	}
}

func TestPackerMasksHighBits(t *testing.T) {
	src := &sequenceSource{values: []uint64{0xFF}, width: 4}
	p, err := NewPacker(src)
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), p.NextWord())
}

func TestPackerRejectsBadWidth(t *testing.T) {
	for _, w := range []int{0, -1, 65} {
		_, err := NewPacker(&sequenceSource{values: []uint64{0}, width: w})
		require.True(t, errors.Is(err, ErrBadWidth), "width %d", w)
	}
}

func TestPackerWriteStringResetsCarry(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 5, 6, 7}
	src := &sequenceSource{values: values, width: 3}
	p, err := NewPacker(src)
	require.NoError(t, err)

	var first, second bytes.Buffer
	src.SetSeed(1)
	require.NoError(t, p.WriteString(&first, 64*5))
	src.SetSeed(1)
	require.NoError(t, p.WriteString(&second, 64*5+17))

	require.Equal(t, 40, first.Len())
	require.Equal(t, first.Bytes(), second.Bytes())

	src.SetSeed(1)
	p.Reset()
	require.Equal(t, p.NextWord(), binary.LittleEndian.Uint64(first.Bytes()[:8]))
}

func TestUnpackWordsErrors(t *testing.T) {
	_, err := UnpackWords([]uint64{0}, 0, 1)
	require.True(t, errors.Is(err, ErrBadWidth))
	_, err = UnpackWords([]uint64{0}, 5, 13)
	require.True(t, errors.Is(err, ErrInvalidLength))
}
