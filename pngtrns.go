// Package pngtrns decodes the PNG transparency chunk (tRNS) and applies it to
// palette indices and raw samples to produce pixels with alpha.
//
// The surrounding PNG machinery (IHDR, PLTE, chunk framing, CRCs, inflate and
// row filters) is left to the caller. It is consumed through the [HeaderInfo]
// and [RecordContext] interfaces.
package pngtrns

import "errors"

// Standard error types for tRNS decoding. Every one of them is fatal to the image being decoded.
var (
	ErrMissingHeader           = errors.New("tRNS before IHDR")
	ErrDuplicateRecord         = errors.New("multiple tRNS chunks")
	ErrInvalidColorType        = errors.New("tRNS not allowed for color type")
	ErrMalformedPayload        = errors.New("malformed tRNS payload")
	ErrPaletteIndexOutOfBounds = errors.New("palette index out of bounds")
	ErrNotDecoded              = errors.New("tRNS not decoded")
	ErrShortBuffer             = errors.New("buffer too small")
)

// DefaultStrict is the recommended strict setting for [Chunk.Decode].
// Strict decoding rejects payloads whose length does not match the color type exactly.
const DefaultStrict = true
