package dyckprng

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Packer concatenates the samples of a Source into 64-bit words.
//
// Samples are laid out least significant bit first: the low bit of each
// sample follows the most recently filled bit of the current word. A sample
// that does not fit in the current word is split and its high bits start
// the next word.
type Packer struct {
	src    Source
	width  int
	carry  uint64 // bits waiting for the next word
	filled int    // number of valid bits in carry, 0..63
}

// NewPacker returns a packer reading from src.
func NewPacker(src Source) (*Packer, error) {
	w := src.BitWidth()
	if w < 1 || w > 64 {
		return nil, fmt.Errorf("packer: width %d: %w", w, ErrBadWidth)
	}
	return &Packer{src: src, width: w}, nil
}

// Reset discards any carried bits. It is called at the start of every string.
func (p *Packer) Reset() {
	p.carry = 0
	p.filled = 0
}

// NextWord returns the next 64 bits of the stream.
func (p *Packer) NextWord() uint64 {
	var r uint64
	for p.filled < 64 {
		r = p.src.NextInt() & lowMask[p.width]
		p.carry |= r << p.filled
		p.filled += p.width
	}
	// bits of the last sample that made it into this word
	used := p.width + 64 - p.filled
	word := p.carry
	if used < 64 {
		p.carry = r >> used
	} else {
		p.carry = 0
	}
	p.filled = p.width - used
	return word
}

// WriteString resets the carry and writes nbits/64 words to w in
// little-endian byte order.
func (p *Packer) WriteString(w io.Writer, nbits uint64) error {
	p.Reset()
	bw := poolGetWriter(w)
	defer poolPutWriter(bw)
	var buf [8]byte
	for i := uint64(0); i < nbits/64; i++ {
		word := p.NextWord()
		if i == 0 {
			traceWord("first word", word)
		}
		binary.LittleEndian.PutUint64(buf[:], word)
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("packer: writing word %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("packer: flush: %w", err)
	}
	return nil
}

// UnpackWords reverses the packing rule: it splits words into count samples
// of the given width, in the order the packer consumed them.
func UnpackWords(words []uint64, width, count int) ([]uint64, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("unpack: width %d: %w", width, ErrBadWidth)
	}
	if count*width > len(words)*64 {
		return nil, fmt.Errorf("unpack: %d samples of %d bits exceed %d words: %w",
			count, width, len(words), ErrInvalidLength)
	}
	out := make([]uint64, count)
	bit := 0
	for i := range out {
		word, off := bit/64, bit%64
		v := words[word] >> off
		if off+width > 64 {
			v |= words[word+1] << (64 - off)
		}
		out[i] = v & lowMask[width]
		bit += width
	}
	return out, nil
}
