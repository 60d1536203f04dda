package pngtrns

// ChunkType is a four-letter PNG chunk tag.
type ChunkType string

// Chunk types the tRNS decoder looks up.
const (
	ChunkIHDR ChunkType = "IHDR"
	ChunkPLTE ChunkType = "PLTE"
	ChunkTRNS ChunkType = "tRNS"
)

func (t ChunkType) String() string { return string(t) }

// Record is a chunk that has already been decoded.
type Record interface {
	Type() ChunkType
}

// HeaderInfo exposes the IHDR fields the tRNS decoder depends on.
type HeaderInfo interface {
	ColorType() ColorType
	// BitDepth is the number of bits per sample (or per palette index).
	BitDepth() int
	// BytesPerPixel is the size of one pixel in the output image buffer.
	BytesPerPixel() int
}

// RecordContext gives a chunk access to the chunks decoded before it.
// It must not yet contain the chunk being decoded.
type RecordContext interface {
	FirstOf(t ChunkType) (Record, bool)
	SelfType() ChunkType
}

// Header is a decoded IHDR as far as this package is concerned.
// It satisfies both [Record] and [HeaderInfo].
type Header struct {
	Color     ColorType
	Depth     int
	PixelSize int // Bytes per pixel of the output buffer.
}

func (h Header) Type() ChunkType      { return ChunkIHDR }
func (h Header) ColorType() ColorType { return h.Color }
func (h Header) BitDepth() int        { return h.Depth }
func (h Header) BytesPerPixel() int   { return h.PixelSize }

// Chunks is an ordered list of decoded chunks.
type Chunks struct {
	records []Record
}

// Add appends a decoded chunk.
func (c *Chunks) Add(r Record) {
	c.records = append(c.records, r)
}

// Len returns the number of chunks added so far.
func (c *Chunks) Len() int {
	return len(c.records)
}

// FirstOf returns the earliest chunk of type t.
func (c *Chunks) FirstOf(t ChunkType) (Record, bool) {
	for _, r := range c.records {
		if r.Type() == t {
			return r, true
		}
	}

	return nil, false
}

// Context returns a view of c for decoding a chunk of type self.
func (c *Chunks) Context(self ChunkType) RecordContext {
	return chunkContext{chunks: c, self: self}
}

type chunkContext struct {
	chunks *Chunks
	self   ChunkType
}

func (cc chunkContext) FirstOf(t ChunkType) (Record, bool) { return cc.chunks.FirstOf(t) }
func (cc chunkContext) SelfType() ChunkType                { return cc.self }
