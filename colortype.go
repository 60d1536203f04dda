package pngtrns

import "strconv"

// ColorType is the IHDR color type.
type ColorType uint8

// Color types, as per the PNG spec.
const (
	Grayscale      ColorType = 0
	TrueColor      ColorType = 2
	Indexed        ColorType = 3
	GrayscaleAlpha ColorType = 4
	TrueColorAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "grayscale"
	case TrueColor:
		return "truecolor"
	case Indexed:
		return "indexed"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case TrueColorAlpha:
		return "truecolor+alpha"
	default:
		return "colortype(" + strconv.Itoa(int(c)) + ")"
	}
}

// HasAlpha reports whether pixels of this color type carry their own alpha channel.
// A tRNS chunk is illegal for such images.
func (c ColorType) HasAlpha() bool {
	switch c {
	case GrayscaleAlpha, TrueColorAlpha:
		return true
	}

	return false
}
