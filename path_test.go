package dyckprng

import (
	"bytes"
	"testing"
)

func mustPath(t *testing.T, s string) Path {
	t.Helper()
	p, err := ParsePath(s)
	if err != nil {
		t.Fatalf("ParsePath(%q) error = %v", s, err)
	}
	return p
}

func TestPathLevel(t *testing.T) {
	p := mustPath(t, "1101000")
	want := []int{0, 1, 2, 1, 2, 1, 0, -1}
	for i := -1; i < len(p); i++ {
		if got := p.Level(i); got != want[i+1] {
			t.Errorf("Level(%d) = %d, want %d", i, got, want[i+1])
		}
	}
}

func TestPathPredicates(t *testing.T) {
	tests := []struct {
		path     string
		dyck     bool
		balanced bool
	}{
		{"", true, true},
		{"10", true, true},
		{"01", false, true},
		{"110100", true, true},
		{"100110", false, true},
		{"1100", true, true},
		{"110", false, false},
		{"111000", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := mustPath(t, tt.path)
			if got := p.IsDyck(); got != tt.dyck {
				t.Errorf("IsDyck() = %v, want %v", got, tt.dyck)
			}
			if got := p.IsBalanced(); got != tt.balanced {
				t.Errorf("IsBalanced() = %v, want %v", got, tt.balanced)
			}
		})
	}
}

func TestPathDwell(t *testing.T) {
	tests := []struct {
		path         string
		above, below int
	}{
		{"1100", 4, 0},
		{"0011", 0, 4},
		{"10010110", 4, 4},
		{"1010", 4, 0},
	}

	for _, tt := range tests {
		above, below := mustPath(t, tt.path).Dwell()
		if above != tt.above || below != tt.below {
			t.Errorf("Dwell(%s) = (%d, %d), want (%d, %d)", tt.path, above, below, tt.above, tt.below)
		}
	}
}

func TestParsePathRejectsGarbage(t *testing.T) {
	if _, err := ParsePath("10x1"); err == nil {
		t.Fatal("ParsePath accepted a non-binary character")
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	const s = "1101001000111"
	if got := mustPath(t, s).String(); got != s {
		t.Errorf("String() = %q, want %q", got, s)
	}
}

func TestPathCloneDoesNotAlias(t *testing.T) {
	p := mustPath(t, "1100")
	c := p.Clone()
	c[0] = false
	if !p[0] {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, mustPath(t, "1001")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "1  |\\\n" +
		"0  |/\n" +
		"0 /|\n" +
		"1 \\|\n"
	if buf.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestFirstLowest(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", -1},
		{"0", 0},
		{"1101000", 6},
		{"0110100", 0},
		{"1000110", 3},
		{"0001011", 2},
	}

	for _, tt := range tests {
		if got := firstLowest(mustPath(t, tt.path)); got != tt.want {
			t.Errorf("firstLowest(%s) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestRotateLeft(t *testing.T) {
	p := mustPath(t, "1000110")
	rotateLeft(p, 4)
	if got := p.String(); got != "1101000" {
		t.Errorf("rotateLeft = %s, want 1101000", got)
	}
	rotateLeft(p, len(p))
	if got := p.String(); got != "1101000" {
		t.Errorf("full rotation changed the path: %s", got)
	}
}
