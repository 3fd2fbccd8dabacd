package dyckprng

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Path is a walk encoded as bits: true is an up step, false a down step.
type Path []bool

// Level returns the number of up steps minus the number of down steps in
// p[0..i]. Level(-1) is 0.
func (p Path) Level(i int) int {
	lvl := 0
	for _, b := range p[:i+1] {
		lvl += step(b)
	}
	return lvl
}

// Ones returns the number of up steps.
func (p Path) Ones() int {
	n := 0
	for _, b := range p {
		if b {
			n++
		}
	}
	return n
}

// IsBalanced reports whether p has as many up steps as down steps.
func (p Path) IsBalanced() bool {
	return 2*p.Ones() == len(p)
}

// IsDyck reports whether p is balanced and never dips below level 0.
func (p Path) IsDyck() bool {
	lvl := 0
	for _, b := range p {
		lvl += step(b)
		if lvl < 0 {
			return false
		}
	}
	return lvl == 0
}

// Dwell returns the number of steps spent strictly above and strictly below
// the axis. A step counts as above (below) when it starts or ends above
// (below) level 0.
func (p Path) Dwell() (above, below int) {
	lvl := 0
	for _, b := range p {
		next := lvl + step(b)
		switch {
		case lvl > 0 || next > 0:
			above++
		case lvl < 0 || next < 0:
			below++
		}
		lvl = next
	}
	return above, below
}

// Clone returns a copy of p that does not alias the generator's buffer.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// String returns p as a string of '0' and '1' characters.
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParsePath parses a string of '0' and '1' characters.
func ParsePath(s string) (Path, error) {
	p := make(Path, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			p[i] = true
		default:
			return nil, fmt.Errorf("dyckprng: invalid path character %q at %d", s[i], i)
		}
	}
	return p, nil
}

// Render draws p as a vertical ASCII walk, one step per line. The axis is
// drawn with '|'; up steps are '\' and down steps '/'.
func Render(w io.Writer, p Path) error {
	bw := bufio.NewWriter(w)
	minLvl := 0
	lvl := 0
	for _, b := range p {
		lvl += step(b)
		minLvl = min(minLvl, lvl)
	}
	depth := -minLvl

	lvl = 0
	for _, b := range p {
		mark := byte('/')
		if b {
			mark = '\\'
		}
		// the glyph sits between the levels before and after the step
		pos := lvl
		if !b {
			pos = lvl - 1
		}
		if b {
			bw.WriteString("1 ")
		} else {
			bw.WriteString("0 ")
		}
		if pos < 0 {
			bw.WriteString(strings.Repeat(" ", depth+pos))
			bw.WriteByte(mark)
			bw.WriteString(strings.Repeat(" ", -(pos + 1)))
			bw.WriteByte('|')
		} else {
			bw.WriteString(strings.Repeat(" ", depth))
			bw.WriteByte('|')
			bw.WriteString(strings.Repeat(" ", pos))
			bw.WriteByte(mark)
		}
		bw.WriteByte('\n')
		lvl += step(b)
	}
	return bw.Flush()
}

func step(b bool) int {
	if b {
		return 1
	}
	return -1
}

// firstLowest returns the index of the bit after which the walk reaches its
// global minimum for the first time, or -1 for an empty walk.
func firstLowest(p Path) int {
	minIdx, lvl, minLvl := -1, 0, 0
	for i, b := range p {
		if b {
			lvl++
			continue
		}
		lvl--
		if lvl < minLvl {
			minLvl = lvl
			minIdx = i
		}
	}
	return minIdx
}

// rotateLeft moves p[k:] in front of p[:k] in place.
func rotateLeft(p Path, k int) {
	slices.Reverse(p[:k])
	slices.Reverse(p[k:])
	slices.Reverse(p)
}

func flip(p Path) {
	for i := range p {
		p[i] = !p[i]
	}
}

// sampleDyck turns window, of odd length 2k+1, into a uniformly random Dyck
// path of half-length k followed by one trailing down step. permute must
// apply a uniformly random permutation.
//
// The window is filled with k up steps and k+1 down steps and shuffled. Of
// the 2k+1 cyclic rotations exactly one stays non-negative until its final
// step (cycle lemma); it starts right after the first global minimum.
func sampleDyck(window Path, permute func(Path)) {
	k := len(window) / 2
	for i := range window {
		window[i] = i < k
	}
	permute(window)
	rotateLeft(window, firstLowest(window)+1)
}
