package parser

import (
	"github.com/udonlang/udon/pkg/event"
)

// parseBang dispatches a '!' followed by '{': interpolation on a double
// brace, otherwise an inline directive (raw when the name is wrapped in
// colons).
func (e *engine) parseBang() {
	if b, ok := e.c.peekAt(2); ok && b == '{' {
		e.parseInterpolation()
		return
	}
	start := e.c.pos
	e.c.advanceN(2) // "!{"

	raw := false
	if b, ok := e.c.peek(); ok && b == ':' {
		raw = true
		e.c.advance()
	}
	name, hasName := e.parseName()
	if raw {
		if !e.c.skip(':') {
			e.emitError(event.ErrIncompleteDirective, start, e.c.pos)
		}
	}
	e.emit(event.Event{
		Kind:    event.KindDirectiveStart,
		Name:    name,
		HasName: hasName,
		Raw:     raw,
		Span:    event.Span{Start: start, End: e.c.pos},
	})
	e.c.skip(' ')
	if raw {
		e.parseRawBraceBody(start)
	} else if !e.parseProse(true) {
		e.emitError(event.ErrUnclosedDirective, start, e.c.pos)
	}
	e.emitMarker(event.KindDirectiveEnd, e.c.pos, e.c.pos)
}

// parseRawBraceBody captures balanced-brace content verbatim as RawContent,
// flushed per chunk boundary. The cursor ends past the matching '}'.
func (e *engine) parseRawBraceBody(start int64) {
	depth := 0
	m := e.c.mark()
	flush := func() {
		if e.c.pos > m {
			e.emitData(event.KindRawContent, e.arena.SliceAt(m, e.c.pos), m, e.c.pos)
		}
	}
	for {
		b, st := e.c.scanChunk("{}")
		switch st {
		case scanChunkEnd:
			flush()
			m = e.c.mark()
			continue
		case scanExhausted:
			if e.c.more() {
				continue
			}
			flush()
			e.emitError(event.ErrUnclosedDirective, start, e.c.pos)
			return
		}
		if b == '{' {
			depth++
			e.c.advance()
			continue
		}
		if depth == 0 {
			flush()
			e.c.advance()
			return
		}
		depth--
		e.c.advance()
	}
}

// parseInterpolation captures '!{{expr}}' as one opaque event. The
// expression grammar belongs to a host language; here it is pass-through
// bytes, verbatim minus the enclosing double braces. Inner braces are
// balanced, so expressions may nest braces arbitrarily deep.
func (e *engine) parseInterpolation() {
	start := e.c.pos
	e.c.advanceN(3) // "!{{"
	depth := 0
	m := e.c.mark()
	for {
		d, ok := e.c.scanTo("{}")
		if !ok {
			e.emitError(event.ErrUnclosedInterpolation, start, e.c.pos)
			e.emitData(event.KindInterpolation, e.arena.SliceAt(m, e.c.pos), m, e.c.pos)
			return
		}
		if d == '{' {
			depth++
			e.c.advance()
			continue
		}
		if depth > 0 {
			depth--
			e.c.advance()
			continue
		}
		if nb, ok := e.c.peekAt(1); ok && nb == '}' {
			s := e.c.slice(m, 0)
			e.c.advanceN(2)
			e.emitData(event.KindInterpolation, s, m, e.c.pos-2)
			return
		}
		// Lone '}' at depth zero is part of the expression.
		e.c.advance()
	}
}

// parseBlockDirective consumes a line-start directive at column col:
// '!name rest' with a recursively parsed body (same-line content plus the
// indented block), or '!:name:' whose indented body is captured raw.
func (e *engine) parseBlockDirective(col int) {
	start := e.c.pos
	e.c.advance() // '!'

	raw := false
	if b, ok := e.c.peek(); ok && b == ':' {
		raw = true
		e.c.advance()
	}
	name, hasName := e.parseName()
	if raw {
		if !e.c.skip(':') {
			e.emitError(event.ErrIncompleteDirective, start, e.c.pos)
		}
	}
	e.emit(event.Event{
		Kind:    event.KindDirectiveStart,
		Name:    name,
		HasName: hasName,
		Raw:     raw,
		Span:    event.Span{Start: start, End: e.c.pos},
	})
	if raw {
		e.parseRawSameLine()
		e.parseRawBlock(col)
	} else {
		for {
			e.c.skipRun(' ')
			b, ok := e.c.peek()
			if !ok {
				break
			}
			if b == ':' {
				e.parseAttribute(vcSameLine)
				continue
			}
			if b == '\n' {
				e.c.advance()
				break
			}
			e.parseProse(false)
			break
		}
		e.parseBlock(col)
	}
	e.emitMarker(event.KindDirectiveEnd, e.c.pos, e.c.pos)
}

// parseRawSameLine captures the rest of a raw directive's opening line, if
// any, as RawContent without the terminating newline.
func (e *engine) parseRawSameLine() {
	e.c.skip(' ')
	m := e.c.mark()
	if _, ok := e.c.scanTo("\n"); ok {
		if e.c.pos > m {
			e.emitData(event.KindRawContent, e.arena.SliceAt(m, e.c.pos), m, e.c.pos)
		}
		e.c.advance()
		return
	}
	if e.c.pos > m {
		e.emitData(event.KindRawContent, e.arena.SliceAt(m, e.c.pos), m, e.c.pos)
	}
}

// parseRawBlock captures every line more indented than col as verbatim
// RawContent, one event per line including indentation and newline. Blank
// lines inside the body are preserved; trailing blank lines before the
// dedent belong to the enclosing block and are dropped. The dedent line is
// left pending exactly as parseBlock would leave it.
func (e *engine) parseRawBlock(col int) {
	var pending []event.Span
	for {
		lineStart := e.c.pos
		n := e.c.skipRun(' ')
		b, ok := e.c.peek()
		if !ok {
			return
		}
		if b == '\n' {
			e.c.advance()
			pending = append(pending, event.Span{Start: lineStart, End: e.c.pos})
			continue
		}
		if b == '\t' {
			start := e.c.pos
			e.skipRestOfLine()
			e.emitError(event.ErrTabIndent, start, e.c.pos)
			continue
		}
		if int(n) <= col {
			// Dedent: hand the line head to the enclosing block.
			e.lineStart = lineStart
			e.lineCol = int(n)
			e.lineReady = true
			return
		}
		for _, sp := range pending {
			e.emitData(event.KindRawContent, e.arena.SliceAt(sp.Start, sp.End), sp.Start, sp.End)
		}
		pending = pending[:0]
		if _, ok := e.c.scanTo("\n"); ok {
			e.c.advance()
		}
		e.emitData(event.KindRawContent, e.arena.SliceAt(lineStart, e.c.pos), lineStart, e.c.pos)
	}
}
