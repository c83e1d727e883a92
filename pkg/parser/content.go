package parser

import (
	"github.com/udonlang/udon/pkg/event"
)

// Prose delimiter sets. Every structural trigger is listed so the bulk scan
// stops exactly where a byte-by-byte loop would; all other bytes are crossed
// in one scan.
const (
	proseLineDelims  = "\n;!|@'"
	proseBraceDelims = "{}\n;!|@'"
)

// parseProse scans mixed content, emitting Text runs and dispatching inline
// constructs (comments, inline directives, interpolation, embedded and
// nested elements, references, escapes).
//
// In line mode (braceMode false) it consumes through the terminating
// newline and returns true; a nested element takes over the rest of the
// line and its children, after which prose is done. In brace mode it
// consumes the '}' balancing the caller's opener and returns true, or
// returns false at end of stream with the construct unclosed.
//
// Text is flushed at every chunk boundary, so memory stays bounded by the
// longest single token, not the content length. Consumers concatenate
// consecutive Text events.
func (e *engine) parseProse(braceMode bool) bool {
	delims := proseLineDelims
	if braceMode {
		delims = proseBraceDelims
	}
	depth := 0
	contentStart := e.c.pos
	m := e.c.mark()
	for {
		b, st := e.c.scanChunk(delims)
		switch st {
		case scanChunkEnd:
			e.emitText(m, e.c.pos)
			m = e.c.mark()
			continue
		case scanExhausted:
			if e.c.more() {
				continue
			}
			e.emitText(m, e.c.pos)
			return !braceMode
		}
		switch b {
		case '\n':
			e.emitText(m, e.c.pos)
			e.c.advance()
			if braceMode {
				// Inside braces a newline just separates content runs.
				m = e.c.mark()
				continue
			}
			return true
		case '{':
			depth++
			e.c.advance()
		case '}':
			if depth == 0 {
				e.emitText(m, e.c.pos)
				e.c.advance()
				return true
			}
			depth--
			e.c.advance()
		case ';':
			e.emitText(m, e.c.pos)
			if e.parseComment() && !braceMode {
				// A line comment runs through the newline; the line
				// is over.
				return true
			}
			m = e.c.mark()
		case '!':
			if nb, ok := e.c.peekAt(1); ok && nb == '{' {
				e.emitText(m, e.c.pos)
				e.parseBang()
				m = e.c.mark()
				continue
			}
			e.c.advance()
		case '|':
			if nb, ok := e.c.peekAt(1); ok && nb == '{' {
				e.emitText(m, e.c.pos)
				e.parseEmbedded()
				m = e.c.mark()
				continue
			}
			if !braceMode && e.elementStartsHere(contentStart) {
				e.emitText(m, e.c.pos)
				e.parseElement(int(e.c.pos - e.lineStart))
				return true
			}
			e.c.advance()
		case '@':
			if nb, ok := e.c.peekAt(1); ok && nb == '[' {
				e.emitText(m, e.c.pos)
				e.parseIdReference()
				m = e.c.mark()
				continue
			}
			e.c.advance()
		case '\'':
			if nb, ok := e.c.peekAt(1); ok && isStructural(nb) {
				// Escape: drop the quote, keep the literal byte, and
				// step past it so it is not re-dispatched. It joins
				// the next Text run.
				e.emitText(m, e.c.pos)
				e.c.advance()
				m = e.c.mark()
				e.c.advance()
				continue
			}
			e.c.advance()
		}
	}
}

// elementStartsHere reports whether a '|' at the cursor opens a nested
// element: only at the start of the content run or after a space. A '|'
// glued to preceding text is literal.
func (e *engine) elementStartsHere(contentStart int64) bool {
	if e.c.pos == contentStart {
		return true
	}
	return e.arena.ByteAt(e.c.pos-1) == ' '
}

// parseComment consumes a comment at the cursor's ';'. The line form runs
// through the terminating newline (reported by returning true); the brace
// form ';{...}' balances braces across any number of lines and returns
// false, leaving the rest of the current line to the caller.
func (e *engine) parseComment() bool {
	start := e.c.pos
	e.c.advance()
	if b, ok := e.c.peek(); ok && b == '{' {
		e.c.advance()
		e.emitMarker(event.KindCommentStart, start, e.c.pos)
		e.parseBraceText(start, event.ErrUnclosedComment)
		e.emitMarker(event.KindCommentEnd, e.c.pos, e.c.pos)
		return false
	}
	e.emitMarker(event.KindCommentStart, start, e.c.pos)
	m := e.c.mark()
	for {
		_, st := e.c.scanChunk("\n")
		if st == scanChunkEnd {
			e.emitText(m, e.c.pos)
			m = e.c.mark()
			continue
		}
		if st == scanExhausted {
			if e.c.more() {
				continue
			}
			e.emitText(m, e.c.pos)
			e.emitMarker(event.KindCommentEnd, e.c.pos, e.c.pos)
			return true
		}
		e.emitText(m, e.c.pos)
		e.emitMarker(event.KindCommentEnd, e.c.pos, e.c.pos)
		e.c.advance()
		return true
	}
}

// parseBraceText consumes balanced-brace content whose opener has already
// been consumed, emitting Text runs. Depth counting supports unbounded
// nesting. At end of stream the unclosed error is emitted and the construct
// is treated as closed.
func (e *engine) parseBraceText(start int64, unclosed event.ErrCode) {
	depth := 0
	m := e.c.mark()
	for {
		b, st := e.c.scanChunk("{}")
		switch st {
		case scanChunkEnd:
			e.emitText(m, e.c.pos)
			m = e.c.mark()
			continue
		case scanExhausted:
			if e.c.more() {
				continue
			}
			e.emitText(m, e.c.pos)
			e.emitError(unclosed, start, e.c.pos)
			return
		}
		if b == '{' {
			depth++
			e.c.advance()
			continue
		}
		if depth == 0 {
			e.emitText(m, e.c.pos)
			e.c.advance()
			return
		}
		depth--
		e.c.advance()
	}
}

// fenceAhead reports whether the cursor sits on a run of three or more
// backticks, the opening of a freeform block.
func (e *engine) fenceAhead() bool {
	for i := int64(1); i < 3; i++ {
		b, ok := e.c.peekAt(i)
		if !ok || b != '`' {
			return false
		}
	}
	return true
}

// parseFreeform consumes a fenced block opened by a line of three or more
// backticks at fenceCol. Content between the fence lines is captured
// byte-for-byte, one RawContent event per line including its newline; the
// fence lines themselves are never part of the content. The block closes at
// the next all-backtick line (three or more) at the same or a shallower
// column. A whitespace-only line immediately before the closing fence is
// preserved verbatim.
func (e *engine) parseFreeform(fenceCol int) {
	start := e.c.pos
	e.c.skipRun('`')
	// Rest of the fence line is an info string (language tag), trimmed of
	// surrounding spaces.
	e.c.skipRun(' ')
	infoStart := e.c.pos
	_, sawNewline := e.c.scanTo("\n")
	infoEnd := e.c.pos
	for infoEnd > infoStart && e.arena.ByteAt(infoEnd-1) == ' ' {
		infoEnd--
	}
	ev := event.Event{Kind: event.KindFreeformStart, Span: event.Span{Start: start, End: e.c.pos}}
	if infoEnd > infoStart {
		ev.Name = e.arena.SliceAt(infoStart, infoEnd)
		ev.HasName = true
	}
	e.emit(ev)
	if !sawNewline {
		// Fence with no following newline: nothing to capture.
		e.emitError(event.ErrUnclosedFreeform, start, e.c.pos)
		e.emitMarker(event.KindFreeformEnd, e.c.pos, e.c.pos)
		return
	}
	e.c.advance()

	for {
		lineStart := e.c.pos
		if _, ok := e.c.peek(); !ok {
			e.emitError(event.ErrUnclosedFreeform, start, e.c.pos)
			e.emitMarker(event.KindFreeformEnd, e.c.pos, e.c.pos)
			return
		}
		if e.closingFence(lineStart, fenceCol) {
			e.emitMarker(event.KindFreeformEnd, lineStart, e.c.pos)
			return
		}
		e.c.setPos(lineStart)
		if _, ok := e.c.scanTo("\n"); ok {
			e.c.advance()
			e.emitData(event.KindRawContent, e.arena.SliceAt(lineStart, e.c.pos), lineStart, e.c.pos)
			continue
		}
		// Last line without newline, then end of stream.
		e.emitData(event.KindRawContent, e.arena.SliceAt(lineStart, e.c.pos), lineStart, e.c.pos)
		e.emitError(event.ErrUnclosedFreeform, start, e.c.pos)
		e.emitMarker(event.KindFreeformEnd, e.c.pos, e.c.pos)
		return
	}
}

// closingFence consumes the current line if it is a closing fence for a
// block opened at fenceCol: optional indentation of at most fenceCol
// spaces, three or more backticks, optional trailing spaces, end of line.
// On a non-fence line the cursor is left where it was moved; the caller
// rewinds to lineStart.
func (e *engine) closingFence(lineStart int64, fenceCol int) bool {
	n := e.c.skipRun(' ')
	if int(n) > fenceCol {
		return false
	}
	if b, ok := e.c.peek(); !ok || b != '`' {
		return false
	}
	if e.c.skipRun('`') < 3 {
		return false
	}
	e.c.skipRun(' ')
	b, ok := e.c.peek()
	if !ok {
		return true
	}
	if b != '\n' {
		return false
	}
	e.c.advance()
	return true
}
