package pngtrns

import (
	"fmt"

	"go.uber.org/zap"
)

// Payload sizes of a single transparent key.
const (
	graySampleSize = 2
	rgbSampleSize  = 6
)

// Chunk is a tRNS chunk. The zero value is ready to decode.
type Chunk struct {
	decoded bool
	header  HeaderInfo
	table   Table
}

// Type returns [ChunkTRNS].
func (c *Chunk) Type() ChunkType { return ChunkTRNS }

// validate checks that a tRNS chunk may appear at this point, before any payload byte is read.
func (c *Chunk) validate(rc RecordContext, hdr HeaderInfo) error {
	if hdr == nil {
		return ErrMissingHeader
	}

	if rc == nil {
		return fmt.Errorf("no chunk context: %w", ErrMissingHeader)
	}

	if _, ok := rc.FirstOf(ChunkIHDR); !ok {
		return ErrMissingHeader
	}

	if c.decoded {
		return fmt.Errorf("chunk decoded twice: %w", ErrDuplicateRecord)
	}

	if _, ok := rc.FirstOf(rc.SelfType()); ok {
		return ErrDuplicateRecord
	}

	if ct := hdr.ColorType(); ct.HasAlpha() {
		return fmt.Errorf("%w: %s", ErrInvalidColorType, ct)
	}

	return nil
}

// Decode decodes the tRNS payload data[offset:offset+length].
// Earlier chunks are looked up in rc; hdr is the image header.
//
// Strict decoding requires exactly one key for grayscale and truecolor
// images, and no more alpha values than palette entries for indexed images.
// Otherwise extra bytes are ignored and the alpha table is cut at the palette
// size, or at the number of indices the bit depth can address when there is no PLTE.
func (c *Chunk) Decode(rc RecordContext, hdr HeaderInfo, data []byte, offset, length int, strict bool) error {
	if err := c.validate(rc, hdr); err != nil {
		return err
	}

	if offset < 0 || length < 0 || offset > len(data) || length > len(data)-offset {
		return fmt.Errorf("payload [%d:+%d] outside %d bytes: %w", offset, length, len(data), ErrMalformedPayload)
	}

	payload := data[offset : offset+length]
	ct := hdr.ColorType()

	var t Table
	var err error

	switch ct {
	case Grayscale:
		t, err = decodeGray(payload, strict)
	case TrueColor:
		t, err = decodeTrueColor(payload, strict)
	case Indexed:
		t, err = decodeIndexed(rc, hdr, payload, strict)
	default:
		Logger().Debug("tRNS ignored for unknown color type", zap.Stringer("color_type", ct))
	}

	if err != nil {
		return err
	}

	c.decoded = true
	c.header = hdr
	c.table = t

	if t != nil {
		Logger().Debug("tRNS decoded", zap.Stringer("table", t), zap.Bool("strict", strict))
	}

	return nil
}

// checkKeyLength checks that payload holds a whole key of the given size.
func checkKeyLength(payload []byte, size int, strict bool, ct ColorType) error {
	if len(payload) < size || (strict && len(payload) != size) {
		return fmt.Errorf("%s key needs %d bytes, got %d: %w", ct, size, len(payload), ErrMalformedPayload)
	}

	if len(payload) != size {
		Logger().Debug("tRNS extra bytes ignored",
			zap.Stringer("color_type", ct),
			zap.Int("length", len(payload)),
			zap.Int("keys", len(payload)/size))
	}

	return nil
}

// decode16 reads a 16-bit big-endian integer from the specified offset.
func decode16(b []byte, offset int) uint16 {
	return (uint16(b[offset]) << 8) | uint16(b[offset+1])
}

func decodeGray(payload []byte, strict bool) (Table, error) {
	if err := checkKeyLength(payload, graySampleSize, strict, Grayscale); err != nil {
		return nil, err
	}

	return GrayKey{Sample: decode16(payload, 0)}, nil
}

func decodeTrueColor(payload []byte, strict bool) (Table, error) {
	if err := checkKeyLength(payload, rgbSampleSize, strict, TrueColor); err != nil {
		return nil, err
	}

	return TrueColorKey{
		R: decode16(payload, 0),
		G: decode16(payload, 2),
		B: decode16(payload, 4),
	}, nil
}

// maxPaletteEntries is the number of palette indices addressable at the given bit depth.
func maxPaletteEntries(depth int) int {
	if depth <= 0 || depth >= 8 {
		return 256
	}

	return 1 << depth
}

func decodeIndexed(rc RecordContext, hdr HeaderInfo, payload []byte, strict bool) (Table, error) {
	var plte PaletteRecord
	if r, ok := rc.FirstOf(ChunkPLTE); ok {
		plte, _ = r.(PaletteRecord)
	}

	if plte == nil && strict {
		return nil, fmt.Errorf("indexed tRNS before PLTE: %w", ErrMalformedPayload)
	}

	// Without a PLTE the table is bounded by the indices the bit depth can address.
	np := maxPaletteEntries(hdr.BitDepth())
	if plte != nil {
		np = len(plte.Entries())
	}

	if len(payload) > np {
		if strict {
			return nil, fmt.Errorf("%d alpha values for %d palette entries: %w", len(payload), np, ErrMalformedPayload)
		}

		Logger().Debug("tRNS alpha values truncated to palette size",
			zap.Int("length", len(payload)),
			zap.Int("palette", np),
			zap.Bool("plte", plte != nil))
		payload = payload[:np]
	}

	return NewIndexedAlpha(payload), nil
}

// Colors returns the decoded table. It is nil for color types that take no tRNS.
func (c *Chunk) Colors() (Table, error) {
	if !c.decoded {
		return nil, ErrNotDecoded
	}

	return c.table, nil
}
