package parser

import (
	"bytes"

	"github.com/udonlang/udon/pkg/arena"
)

// scanStatus reports why a bounded scan stopped.
type scanStatus int

const (
	// scanHit: the cursor is positioned exactly at a delimiter byte.
	scanHit scanStatus = iota

	// scanChunkEnd: the current chunk is exhausted but later chunks hold
	// more bytes. Content loops flush a per-chunk event here.
	scanChunkEnd

	// scanExhausted: all available bytes are consumed; the caller decides
	// whether to wait for more input or treat this as end of stream.
	scanExhausted
)

// cursor tracks an absolute position over the arena's chunk sequence and
// provides the scanning primitives the grammar engine is written against:
// peek/advance, mark/slice, and bulk delimiter scans.
//
// peek and the blocking scans may suspend the engine goroutine through the
// more callback; the non-blocking variants never do.
type cursor struct {
	arena *arena.Arena
	pos   int64

	// Cached chunk covering pos, to keep peek a bounds check.
	data []byte
	base int64

	// more requests additional input for the current position. It returns
	// false once the stream is finished and no byte will ever arrive.
	more func() bool
}

func newCursor(a *arena.Arena, more func() bool) *cursor {
	return &cursor{arena: a, more: more}
}

// reload points the chunk cache at the chunk containing pos.
// Requires pos < arena.TotalBytes().
func (c *cursor) reload() {
	c.data, c.base = c.arena.ChunkAt(c.pos)
}

// avail reports whether the byte at pos has already been fed.
func (c *cursor) avail() bool {
	return c.pos < c.arena.TotalBytes()
}

// peek returns the byte at the current position, waiting for more input if
// necessary. Returns false only at true end of stream.
func (c *cursor) peek() (byte, bool) {
	for !c.avail() {
		if !c.more() {
			return 0, false
		}
	}
	if c.pos < c.base || c.pos >= c.base+int64(len(c.data)) {
		c.reload()
	}
	return c.data[c.pos-c.base], true
}

// peekAt returns the byte at pos+n, waiting for input as needed.
func (c *cursor) peekAt(n int64) (byte, bool) {
	for c.pos+n >= c.arena.TotalBytes() {
		if !c.more() {
			return 0, false
		}
	}
	return c.arena.ByteAt(c.pos + n), true
}

// advance moves past the current byte. Only legal after a successful peek.
func (c *cursor) advance() {
	c.pos++
}

// advanceN moves past n bytes.
func (c *cursor) advanceN(n int64) {
	c.pos += n
}

// setPos rewinds or jumps the cursor to an absolute position that has
// already been fed. Used to re-scan a line examined for a closing fence.
func (c *cursor) setPos(p int64) {
	c.pos = p
}

// mark records the current position as the start of a pending slice.
func (c *cursor) mark() int64 {
	return c.pos
}

// slice builds the slice from a mark to the current position plus endAdjust.
// A negative adjustment trims delimiter bytes already consumed.
func (c *cursor) slice(m int64, endAdjust int64) arena.Slice {
	return c.arena.SliceAt(m, c.pos+endAdjust)
}

// scanChunk advances toward the first occurrence of any delimiter byte,
// looking only at the chunk containing the current position. It never blocks.
// On scanHit the cursor rests on the delimiter.
func (c *cursor) scanChunk(delims string) (byte, scanStatus) {
	if !c.avail() {
		return 0, scanExhausted
	}
	if c.pos < c.base || c.pos >= c.base+int64(len(c.data)) {
		c.reload()
	}
	seg := c.data[c.pos-c.base:]
	i := indexAny(seg, delims)
	if i >= 0 {
		c.pos += int64(i)
		return seg[i], scanHit
	}
	c.pos += int64(len(seg))
	if c.avail() {
		return 0, scanChunkEnd
	}
	return 0, scanExhausted
}

// scanTo advances to the first occurrence of any delimiter byte, waiting for
// more input across chunk boundaries. Returns the delimiter found, or false
// at end of stream with the position at the end of input. Used for tokens
// that must not be flushed piecewise (identifiers, keys, quoted strings).
func (c *cursor) scanTo(delims string) (byte, bool) {
	for {
		b, st := c.scanChunk(delims)
		switch st {
		case scanHit:
			return b, true
		case scanChunkEnd:
			continue
		case scanExhausted:
			if !c.more() {
				return 0, false
			}
		}
	}
}

// skip advances past the current byte if it equals b, reporting whether it did.
func (c *cursor) skip(b byte) bool {
	got, ok := c.peek()
	if !ok || got != b {
		return false
	}
	c.advance()
	return true
}

// skipRun advances past consecutive occurrences of b and returns the count.
func (c *cursor) skipRun(b byte) int64 {
	var n int64
	for {
		got, ok := c.peek()
		if !ok || got != b {
			return n
		}
		c.advance()
		n++
	}
}

// indexAny is bytes.IndexByte for single-byte sets and bytes.IndexAny
// otherwise. The delimiter sets are small (2-6 bytes) and ASCII, so
// IndexAny's byte-set path applies.
func indexAny(seg []byte, delims string) int {
	if len(delims) == 1 {
		return bytes.IndexByte(seg, delims[0])
	}
	return bytes.IndexAny(seg, delims)
}
