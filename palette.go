package pngtrns

import "image/color"

// RGB is a single PLTE entry.
type RGB struct {
	R, G, B uint8
}

// Palette is the ordered list of PLTE entries.
type Palette []RGB

// PaletteRecord is a decoded PLTE chunk.
type PaletteRecord interface {
	Record
	Entries() Palette
}

// PaletteChunk is a decoded PLTE chunk. It satisfies [PaletteRecord].
type PaletteChunk struct {
	Palette Palette
}

func (p PaletteChunk) Type() ChunkType { return ChunkPLTE }

func (p PaletteChunk) Entries() Palette { return p.Palette }

// ApplyPalette folds the alpha values of t into p and returns a palette
// usable with [image.Paletted]. Entries without an alpha value stay opaque.
// Tables other than [IndexedAlpha] leave every entry opaque.
func ApplyPalette(p Palette, t Table) color.Palette {
	alpha, _ := t.(IndexedAlpha)

	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha.Alpha(i)}
	}

	return out
}
