package pngtrns

import (
	"image"
	"image/color"
	"testing"
)

// TestColorType verifies the alpha classification of every color type.
func TestColorType(t *testing.T) {
	testCases := []struct {
		ct       ColorType
		name     string
		hasAlpha bool
	}{
		{Grayscale, "grayscale", false},
		{TrueColor, "truecolor", false},
		{Indexed, "indexed", false},
		{GrayscaleAlpha, "grayscale+alpha", true},
		{TrueColorAlpha, "truecolor+alpha", true},
		{ColorType(1), "colortype(1)", false},
		{ColorType(7), "colortype(7)", false},
	}

	for _, tc := range testCases {
		if got := tc.ct.String(); got != tc.name {
			t.Errorf("ColorType(%d).String() = %q, want %q", uint8(tc.ct), got, tc.name)
		}

		if got := tc.ct.HasAlpha(); got != tc.hasAlpha {
			t.Errorf("%v.HasAlpha() = %v, want %v", tc.ct, got, tc.hasAlpha)
		}
	}
}

// TestIndexedAlpha verifies the lookup rules of the per-index alpha table.
func TestIndexedAlpha(t *testing.T) {
	a := NewIndexedAlpha([]uint8{0, 10, 20})

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}

	for idx, want := range map[int]uint8{0: 0, 1: 10, 2: 20, 3: 255, 255: 255, -1: 255} {
		if got := a.Alpha(idx); got != want {
			t.Errorf("Alpha(%d) = %d, want %d", idx, got, want)
		}
	}

	var zero IndexedAlpha
	if got := zero.Alpha(0); got != 255 {
		t.Errorf("zero table Alpha(0) = %d, want 255", got)
	}
}

// TestKeyMatches verifies that keys only match exact samples.
func TestKeyMatches(t *testing.T) {
	g := GrayKey{Sample: 0x0102}
	if !g.Matches(0x0102) || g.Matches(0x0002) || g.Matches(0x0103) {
		t.Errorf("GrayKey.Matches failed for %v", g)
	}

	k := TrueColorKey{R: 1, G: 2, B: 3}
	if !k.Matches(1, 2, 3) {
		t.Errorf("%v does not match its own color", k)
	}

	for _, c := range [][3]uint16{{0, 2, 3}, {1, 0, 3}, {1, 2, 0}, {3, 2, 1}} {
		if k.Matches(c[0], c[1], c[2]) {
			t.Errorf("%v matches %v", k, c)
		}
	}
}

// TestTableString verifies the printed form of each table.
func TestTableString(t *testing.T) {
	testCases := []struct {
		table Table
		want  string
	}{
		{GrayKey{Sample: 5}, "GrayKey(5)"},
		{TrueColorKey{R: 1, G: 2, B: 3}, "TrueColorKey(1,2,3)"},
		{NewIndexedAlpha([]uint8{255, 128, 0}), "IndexedAlpha([255 128 0])"},
	}

	for _, tc := range testCases {
		if got := tc.table.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

// TestApplyPalette verifies that alpha values are merged into an image palette.
func TestApplyPalette(t *testing.T) {
	p := Palette{{10, 20, 30}, {40, 50, 60}, {70, 80, 90}}

	got := ApplyPalette(p, NewIndexedAlpha([]uint8{0, 128}))
	want := color.Palette{
		color.NRGBA{R: 10, G: 20, B: 30, A: 0},
		color.NRGBA{R: 40, G: 50, B: 60, A: 128},
		color.NRGBA{R: 70, G: 80, B: 90, A: 255},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}

	// The result must be usable as the palette of an image.
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), got)
	img.SetColorIndex(1, 0, 1)
	if c := img.At(1, 0).(color.NRGBA); c != want[1] {
		t.Errorf("image pixel = %v, want %v", c, want[1])
	}

	// Without an indexed table every entry is opaque.
	for _, table := range []Table{nil, GrayKey{Sample: 1}} {
		for i, c := range ApplyPalette(p, table) {
			if c.(color.NRGBA).A != 255 {
				t.Errorf("ApplyPalette(%v) entry %d = %v, want opaque", table, i, c)
			}
		}
	}
}
