package parser

import (
	"github.com/udonlang/udon/pkg/arena"
	"github.com/udonlang/udon/pkg/event"
)

// engine holds the state shared by the recursive-descent productions.
// Nesting state lives on the call stack, not here: each production receives
// the column of the construct that owns it and returns on dedent, so the
// goroutine stack depth mirrors the document's nesting depth.
type engine struct {
	arena *arena.Arena
	c     *cursor
	out   sink

	// Pending line head. nextLine reads a line's indentation and first
	// content byte position; the line then stays pending until the
	// production that owns it (by column) consumes it. This is how a
	// dedent line is seen by every unwinding frame without re-reading.
	lineReady bool
	lineCol   int
	lineStart int64

	// Interned synthetic attribute keys for element identity.
	keyID    arena.Slice
	keyClass arena.Slice
}

func newEngine(a *arena.Arena, c *cursor, out sink) *engine {
	return &engine{
		arena:    a,
		c:        c,
		out:      out,
		keyID:    a.Intern("$id"),
		keyClass: a.Intern("$class"),
	}
}

func (e *engine) parseDocument() {
	e.parseBlock(-1)
}

// parseBlock consumes every line more indented than parentCol, dispatching
// each to the line parser. It returns, leaving the line pending, as soon as
// a line at or left of parentCol appears; the caller's End event fires on
// return.
func (e *engine) parseBlock(parentCol int) {
	for {
		if !e.lineReady && !e.nextLine() {
			return
		}
		if e.lineCol <= parentCol {
			return
		}
		e.lineReady = false
		e.parseLine()
	}
}

// nextLine advances to the first content byte of the next non-blank line and
// records its column. Blank lines are no-content, never a dedent signal.
// Tabs in indentation are a lexical error; the line is reported and skipped.
// Returns false at end of stream.
func (e *engine) nextLine() bool {
	for {
		e.lineStart = e.c.pos
		n := e.c.skipRun(' ')
		b, ok := e.c.peek()
		if !ok {
			return false
		}
		switch b {
		case '\n':
			e.c.advance()
			continue
		case '\t':
			start := e.c.pos
			e.skipRestOfLine()
			e.emitError(event.ErrTabIndent, start, e.c.pos)
			continue
		}
		e.lineCol = int(n)
		e.lineReady = true
		return true
	}
}

// parseLine dispatches one line whose indentation has been consumed.
// Every path consumes through the line's terminating newline (or further,
// for multi-line constructs) and leaves the cursor at a line start.
func (e *engine) parseLine() {
	b, ok := e.c.peek()
	if !ok {
		return
	}
	switch b {
	case ':':
		e.parseAttribute(vcBlock)
		e.skipRestOfLine()
	case '!':
		if nb, ok := e.c.peekAt(1); !ok || nb != '{' {
			e.parseBlockDirective(e.lineCol)
			return
		}
		e.parseProse(false)
	case '`':
		if e.fenceAhead() {
			e.parseFreeform(e.lineCol)
			return
		}
		e.parseProse(false)
	default:
		// Elements, comments, references, escapes, and plain prose are
		// all recognized inside the prose scanner.
		e.parseProse(false)
	}
}

// skipRestOfLine consumes through the next newline, or to end of stream.
func (e *engine) skipRestOfLine() {
	if _, ok := e.c.scanTo("\n"); ok {
		e.c.advance()
	}
}

// emit helpers

func (e *engine) emit(ev event.Event) {
	e.out.emit(ev)
}

func (e *engine) emitMarker(k event.Kind, start, end int64) {
	e.emit(event.Event{Kind: k, Span: event.Span{Start: start, End: end}})
}

func (e *engine) emitData(k event.Kind, data arena.Slice, start, end int64) {
	e.emit(event.Event{Kind: k, Data: data, Span: event.Span{Start: start, End: end}})
}

func (e *engine) emitError(code event.ErrCode, start, end int64) {
	e.emit(event.Event{Kind: event.KindError, Err: code, Span: event.Span{Start: start, End: end}})
}

// emitText emits a Text event for a non-empty range.
func (e *engine) emitText(from, to int64) {
	if to > from {
		e.emitData(event.KindText, e.arena.SliceAt(from, to), from, to)
	}
}

// isNameByte reports whether b can appear in an element, directive, or
// attribute identifier. Multi-byte UTF-8 sequences pass through.
func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '_':
		return true
	case b >= 0x80:
		return true
	}
	return false
}

// isStructural reports whether b starts a construct when unescaped, so an
// escape prefix immediately before it suppresses that meaning.
func isStructural(b byte) bool {
	switch b {
	case '|', ':', ';', '!', '\'', '@', '`':
		return true
	}
	return false
}
