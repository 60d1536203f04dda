package pngtrns

import "fmt"

// Table is the decoded content of a tRNS chunk. It is one of [GrayKey],
// [TrueColorKey] or [IndexedAlpha], and never changes once decoded.
type Table interface {
	// Kind is the color type the table applies to.
	Kind() ColorType
	fmt.Stringer

	table()
}

// GrayKey is the gray sample that marks a pixel fully transparent.
type GrayKey struct {
	Sample uint16
}

// TrueColorKey is the RGB triple that marks a pixel fully transparent.
type TrueColorKey struct {
	R, G, B uint16
}

// IndexedAlpha holds one alpha value per palette entry, starting at index 0.
// Entries past the end of the table are fully opaque.
type IndexedAlpha struct {
	values []uint8
}

// NewIndexedAlpha returns a table holding a copy of values.
func NewIndexedAlpha(values []uint8) IndexedAlpha {
	v := make([]uint8, len(values))
	copy(v, values)

	return IndexedAlpha{values: v}
}

func (GrayKey) Kind() ColorType      { return Grayscale }
func (TrueColorKey) Kind() ColorType { return TrueColor }
func (IndexedAlpha) Kind() ColorType { return Indexed }

func (GrayKey) table()      {}
func (TrueColorKey) table() {}
func (IndexedAlpha) table() {}

// Matches reports whether s is the transparent gray sample.
func (k GrayKey) Matches(s uint16) bool {
	return s == k.Sample
}

// Matches reports whether (r, g, b) is the transparent color.
func (k TrueColorKey) Matches(r, g, b uint16) bool {
	return r == k.R && g == k.G && b == k.B
}

// Len returns the number of palette entries with an explicit alpha value.
func (a IndexedAlpha) Len() int {
	return len(a.values)
}

// Values returns a copy of the alpha values.
func (a IndexedAlpha) Values() []uint8 {
	v := make([]uint8, len(a.values))
	copy(v, a.values)

	return v
}

// Alpha returns the alpha value for palette index idx.
func (a IndexedAlpha) Alpha(idx int) uint8 {
	if idx >= 0 && idx < len(a.values) {
		return a.values[idx]
	}

	return 0xFF
}

func (k GrayKey) String() string {
	return fmt.Sprintf("GrayKey(%d)", k.Sample)
}

func (k TrueColorKey) String() string {
	return fmt.Sprintf("TrueColorKey(%d,%d,%d)", k.R, k.G, k.B)
}

func (a IndexedAlpha) String() string {
	return fmt.Sprintf("IndexedAlpha(%v)", a.values)
}
