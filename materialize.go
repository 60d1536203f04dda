package pngtrns

import "fmt"

// sample reads one sample of size 1 or 2 bytes (big-endian).
func sample(b []byte, offset, size int) uint16 {
	if size == 2 {
		return decode16(b, offset)
	}

	return uint16(b[offset])
}

// putSample writes one sample of size 1 or 2 bytes (big-endian).
func putSample(b []byte, offset, size int, v uint16) {
	if size == 2 {
		b[offset] = uint8(v >> 8)
		b[offset+1] = uint8(v)

		return
	}

	b[offset] = uint8(v)
}

// maxSample is the fully opaque alpha value for samples of the given size.
func maxSample(size int) uint16 {
	if size == 2 {
		return 0xFFFF
	}

	return 0xFF
}

// Materialize converts the pixels in input[inputOffset:] to color and alpha,
// writing one pixel every BytesPerPixel bytes of output, starting at outputOffset.
//
// Indexed input is one palette index per byte and is resolved through palette.
// Grayscale and truecolor input is one (or three) samples per pixel, one byte
// each, or two big-endian bytes each at bit depth 16. Samples are written
// unchanged; the alpha channel is 0 where they match the transparent key.
// Alpha is written only when the output pixel has room for it.
func (c *Chunk) Materialize(input []byte, inputOffset int, output []byte, outputOffset int, palette Palette) error {
	if !c.decoded {
		return ErrNotDecoded
	}

	ct := c.header.ColorType()
	bpp := c.header.BytesPerPixel()

	// Bytes per sample, in and out.
	size := 1
	if c.header.BitDepth() == 16 && ct != Indexed {
		size = 2
	}

	var ncomp int
	switch ct {
	case Grayscale, Indexed:
		ncomp = 1
	case TrueColor:
		ncomp = 3
	default:
		return fmt.Errorf("%w: %s", ErrInvalidColorType, ct)
	}

	minBpp := ncomp * size
	if ct == Indexed {
		minBpp = 3
	}

	if bpp < minBpp || bpp%size != 0 {
		return fmt.Errorf("%d bytes per pixel for %s: %w", bpp, ct, ErrShortBuffer)
	}

	if inputOffset < 0 || inputOffset > len(input) {
		return fmt.Errorf("input offset %d outside %d bytes: %w", inputOffset, len(input), ErrShortBuffer)
	}

	n := (len(input) - inputOffset) / (ncomp * size)
	if outputOffset < 0 || outputOffset > len(output) || n*bpp > len(output)-outputOffset {
		return fmt.Errorf("%d pixels need %d bytes at offset %d, have %d: %w", n, n*bpp, outputOffset, len(output), ErrShortBuffer)
	}

	in := input[inputOffset:]
	out := output[outputOffset:]

	switch t := c.table.(type) {
	case IndexedAlpha:
		return materializeIndexed(in, out, n, bpp, palette, t)
	case GrayKey:
		materializeGray(in, out, n, bpp, size, t)
	case TrueColorKey:
		materializeTrueColor(in, out, n, bpp, size, t)
	default:
		return fmt.Errorf("no %s table: %w", ct, ErrNotDecoded)
	}

	return nil
}

func materializeIndexed(in, out []byte, n, bpp int, palette Palette, alpha IndexedAlpha) error {
	outOffset := 0

	for i := 0; i < n; i++ {
		idx := int(in[i])
		if idx >= len(palette) {
			return fmt.Errorf("pixel %d: index %d, palette has %d entries: %w", i, idx, len(palette), ErrPaletteIndexOutOfBounds)
		}

		p := palette[idx]
		out[outOffset] = p.R
		out[outOffset+1] = p.G
		out[outOffset+2] = p.B
		if bpp >= 4 {
			out[outOffset+3] = alpha.Alpha(idx)
		}

		outOffset += bpp
	}

	return nil
}

func materializeGray(in, out []byte, n, bpp, size int, key GrayKey) {
	opaque := maxSample(size)
	nchan := bpp / size
	inOffset, outOffset := 0, 0

	for i := 0; i < n; i++ {
		v := sample(in, inOffset, size)

		a := opaque
		if key.Matches(v) {
			a = 0
		}

		switch {
		case nchan >= 4: // Gray replicated into RGB.
			putSample(out, outOffset, size, v)
			putSample(out, outOffset+size, size, v)
			putSample(out, outOffset+2*size, size, v)
			putSample(out, outOffset+3*size, size, a)
		case nchan == 3: // RGB without alpha.
			putSample(out, outOffset, size, v)
			putSample(out, outOffset+size, size, v)
			putSample(out, outOffset+2*size, size, v)
		case nchan == 2:
			putSample(out, outOffset, size, v)
			putSample(out, outOffset+size, size, a)
		default:
			putSample(out, outOffset, size, v)
		}

		inOffset += size
		outOffset += bpp
	}
}

func materializeTrueColor(in, out []byte, n, bpp, size int, key TrueColorKey) {
	opaque := maxSample(size)
	nchan := bpp / size
	inOffset, outOffset := 0, 0

	for i := 0; i < n; i++ {
		r := sample(in, inOffset, size)
		g := sample(in, inOffset+size, size)
		b := sample(in, inOffset+2*size, size)

		putSample(out, outOffset, size, r)
		putSample(out, outOffset+size, size, g)
		putSample(out, outOffset+2*size, size, b)

		if nchan >= 4 {
			a := opaque
			if key.Matches(r, g, b) {
				a = 0
			}

			putSample(out, outOffset+3*size, size, a)
		}

		inOffset += 3 * size
		outOffset += bpp
	}
}
