// Package arena manages the input chunks fed to a streaming parse.
// Event payloads reference arena bytes through small Slice handles instead
// of owning copies, which keeps events at a fixed size and lets the caller
// decide when chunk memory is reclaimed.
package arena

import (
	"fmt"
	"sort"
)

// syntheticBit marks a Slice as pointing into a synthetic chunk, a buffer
// materialized for a token that spanned a chunk boundary. Synthetic chunks
// sit outside the sequential input stream.
const syntheticBit uint32 = 1 << 31

// Slice is a 12-byte reference to a byte range inside one chunk.
// It never owns bytes and never spans chunks; spanning ranges are resolved
// through a synthetic chunk first (see Arena.SliceAt).
type Slice struct {
	// Chunk is the chunk handle. The high bit marks synthetic chunks.
	Chunk uint32

	// Start is the inclusive start offset within the chunk.
	Start uint32

	// End is the exclusive end offset within the chunk.
	End uint32
}

// Len returns the length of the slice in bytes.
func (s Slice) Len() int {
	return int(s.End - s.Start)
}

// IsEmpty reports whether the slice has zero length.
func (s Slice) IsEmpty() bool {
	return s.Start == s.End
}

// chunk is one immutable byte sequence owned by the arena.
type chunk struct {
	data []byte

	// streamOff is the absolute offset of data[0] in the input stream.
	// Synthetic chunks record the offset of the range they were built from.
	streamOff int64
}

// Arena owns the input chunks of one parse. Chunks are append-only; a chunk
// may be released once no unread event references it.
//
// An Arena belongs to exactly one parser instance and is not safe for
// concurrent use.
type Arena struct {
	chunks    []chunk
	synthetic []chunk

	// total is the number of real input bytes pushed so far.
	total int64

	// released is the number of leading chunks whose data has been freed.
	released int
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{chunks: make([]chunk, 0, 16)}
}

// Push copies data into the arena as a new chunk and returns its handle.
// The caller may reuse data after Push returns.
func (a *Arena) Push(data []byte) uint32 {
	owned := make([]byte, len(data))
	copy(owned, data)
	idx := uint32(len(a.chunks))
	a.chunks = append(a.chunks, chunk{data: owned, streamOff: a.total})
	a.total += int64(len(data))
	return idx
}

// Resolve returns the bytes a slice refers to. Passing a slice that does not
// belong to this arena, or one whose chunk has been released, is a
// programming error and panics.
func (a *Arena) Resolve(s Slice) []byte {
	c := a.chunkFor(s.Chunk)
	if c.data == nil && s.Start != s.End {
		panic(fmt.Sprintf("arena: resolve of released chunk %d", s.Chunk))
	}
	if int(s.End) > len(c.data) || s.Start > s.End {
		panic(fmt.Sprintf("arena: slice [%d:%d) out of range for chunk %d (len %d)",
			s.Start, s.End, s.Chunk, len(c.data)))
	}
	return c.data[s.Start:s.End]
}

func (a *Arena) chunkFor(handle uint32) *chunk {
	if handle&syntheticBit != 0 {
		i := int(handle &^ syntheticBit)
		if i >= len(a.synthetic) {
			panic(fmt.Sprintf("arena: unknown synthetic chunk %d", i))
		}
		return &a.synthetic[i]
	}
	if int(handle) >= len(a.chunks) {
		panic(fmt.Sprintf("arena: unknown chunk %d", handle))
	}
	return &a.chunks[handle]
}

// SliceAt builds a Slice for the absolute stream range [start, end).
// When the range lies inside one chunk the slice points at it directly.
// When it crosses a chunk boundary the bytes are concatenated into a
// synthetic chunk, created lazily for exactly this range.
func (a *Arena) SliceAt(start, end int64) Slice {
	if start > end || end > a.total {
		panic(fmt.Sprintf("arena: range [%d:%d) outside stream of %d bytes", start, end, a.total))
	}
	if start == end {
		return Slice{}
	}

	ci := a.locate(start)
	c := &a.chunks[ci]
	if end <= c.streamOff+int64(len(c.data)) {
		return Slice{
			Chunk: uint32(ci),
			Start: uint32(start - c.streamOff),
			End:   uint32(end - c.streamOff),
		}
	}

	// Spanning range: materialize the concatenated bytes.
	buf := make([]byte, 0, end-start)
	for pos := start; pos < end; {
		c := &a.chunks[a.locate(pos)]
		off := pos - c.streamOff
		take := int64(len(c.data)) - off
		if pos+take > end {
			take = end - pos
		}
		buf = append(buf, c.data[off:off+take]...)
		pos += take
	}
	idx := uint32(len(a.synthetic)) | syntheticBit
	a.synthetic = append(a.synthetic, chunk{data: buf, streamOff: start})
	return Slice{Chunk: idx, Start: 0, End: uint32(len(buf))}
}

// ByteAt returns the byte at the given absolute stream offset.
func (a *Arena) ByteAt(pos int64) byte {
	c := &a.chunks[a.locate(pos)]
	return c.data[pos-c.streamOff]
}

// ChunkAt returns the bytes of the real chunk containing the absolute stream
// offset, together with the chunk's stream offset. Used by the cursor for
// sequential scanning.
func (a *Arena) ChunkAt(pos int64) (data []byte, streamOff int64) {
	c := &a.chunks[a.locate(pos)]
	return c.data, c.streamOff
}

// Intern stores literal bytes outside the input stream and returns a slice
// referencing them. Used for synthesized payloads such as identity attribute
// keys, which have no source bytes of their own.
func (a *Arena) Intern(s string) Slice {
	idx := uint32(len(a.synthetic)) | syntheticBit
	a.synthetic = append(a.synthetic, chunk{data: []byte(s), streamOff: -1})
	return Slice{Chunk: idx, Start: 0, End: uint32(len(s))}
}

// Chunk returns the raw bytes of a real chunk and its stream offset.
// Used by the cursor for sequential scanning.
func (a *Arena) Chunk(i int) (data []byte, streamOff int64) {
	c := &a.chunks[i]
	return c.data, c.streamOff
}

// NumChunks returns the number of real chunks pushed so far.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// TotalBytes returns the number of real input bytes pushed so far.
func (a *Arena) TotalBytes() int64 {
	return a.total
}

// locate returns the index of the real chunk containing pos.
func (a *Arena) locate(pos int64) int {
	if pos < 0 || pos >= a.total {
		panic(fmt.Sprintf("arena: offset %d outside stream of %d bytes", pos, a.total))
	}
	n := len(a.chunks)
	// sort.Search finds the first chunk starting beyond pos; the one before
	// it contains pos. Empty chunks are skipped by searching on end offsets.
	i := sort.Search(n, func(i int) bool {
		c := &a.chunks[i]
		return c.streamOff+int64(len(c.data)) > pos
	})
	return i
}

// ReleaseThrough frees the data of all real chunks up to and including the
// given handle. Legal only once no live slice references them: resolving a
// released chunk panics. Handles stay valid so later chunks keep their
// indices.
func (a *Arena) ReleaseThrough(handle uint32) {
	if handle&syntheticBit != 0 {
		return
	}
	for i := a.released; i <= int(handle) && i < len(a.chunks); i++ {
		a.chunks[i].data = nil
	}
	if int(handle)+1 > a.released {
		a.released = int(handle) + 1
	}
}

// Clear drops all chunks and synthetic buffers, retaining allocated
// capacity where possible. The arena is ready for a new document.
func (a *Arena) Clear() {
	a.chunks = a.chunks[:0]
	a.synthetic = a.synthetic[:0]
	a.total = 0
	a.released = 0
}
