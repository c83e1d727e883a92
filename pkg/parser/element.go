package parser

import (
	"github.com/udonlang/udon/pkg/arena"
	"github.com/udonlang/udon/pkg/event"
)

// parseElement consumes a block-form element opened by '|' at column col:
// identity, same-line attributes and content, then the indented children
// block. The End event fires when a line at or left of col appears, or at
// end of stream; the recursion itself is the element stack.
func (e *engine) parseElement(col int) {
	start := e.c.pos
	e.c.advance()
	name, hasName := e.parseName()
	e.emit(event.Event{
		Kind:    event.KindElementStart,
		Name:    name,
		HasName: hasName,
		Span:    event.Span{Start: start, End: e.c.pos},
	})
	e.parseIdentity()
	e.parseSameLine()
	e.parseBlock(col)
	e.emitMarker(event.KindElementEnd, e.c.pos, e.c.pos)
}

// parseName reads an element or directive name at the cursor: a run of
// identifier bytes, or a quoted form for names with spaces. Anonymous
// constructs report no name.
func (e *engine) parseName() (arena.Slice, bool) {
	b, ok := e.c.peek()
	if !ok {
		return arena.Slice{}, false
	}
	if b == '\'' || b == '"' {
		// Quoted name: the escape heuristics of prose do not apply
		// here, a quote directly after the marker is always a name.
		if s, ok := e.parseQuotedToken(); ok {
			return s, true
		}
		return arena.Slice{}, false
	}
	m := e.c.mark()
	for {
		b, ok := e.c.peek()
		if !ok || !isNameByte(b) {
			break
		}
		e.c.advance()
	}
	if e.c.pos == m {
		return arena.Slice{}, false
	}
	return e.c.slice(m, 0), true
}

// parseIdentity consumes the bracketed-identity suffix of an element:
// '[id]', '.class' (repeatable), and the flags '?', '!', '*', '+'. Each
// piece becomes a synthetic attribute so consumers see one uniform
// attribute model.
func (e *engine) parseIdentity() {
	for {
		b, ok := e.c.peek()
		if !ok {
			return
		}
		switch b {
		case '[':
			bracketStart := e.c.pos
			e.c.advance()
			m := e.c.mark()
			d, ok := e.c.scanTo("]\n")
			if !ok || d == '\n' {
				e.emitError(event.ErrUnclosedBracket, bracketStart, e.c.pos)
				return
			}
			id := e.c.slice(m, 0)
			e.c.advance()
			e.emitData(event.KindAttribute, e.keyID, bracketStart, e.c.pos)
			e.emit(event.Event{
				Kind: event.KindStringValue,
				Data: id,
				Span: event.Span{Start: m, End: e.c.pos - 1},
			})
		case '.':
			dotStart := e.c.pos
			e.c.advance()
			m := e.c.mark()
			for {
				b, ok := e.c.peek()
				if !ok || !isNameByte(b) {
					break
				}
				e.c.advance()
			}
			e.emitData(event.KindAttribute, e.keyClass, dotStart, e.c.pos)
			e.emit(event.Event{
				Kind: event.KindStringValue,
				Data: e.c.slice(m, 0),
				Span: event.Span{Start: m, End: e.c.pos},
			})
		case '?', '!', '*', '+':
			flagStart := e.c.pos
			e.c.advance()
			e.emitData(event.KindAttribute, e.arena.SliceAt(flagStart, e.c.pos), flagStart, e.c.pos)
			e.emit(event.Event{
				Kind: event.KindBoolValue,
				Bool: true,
				Span: event.Span{Start: flagStart, End: e.c.pos},
			})
		default:
			return
		}
	}
}

// parseSameLine consumes the rest of an element's opening line: same-line
// attributes first, then content. The terminating newline is consumed.
func (e *engine) parseSameLine() {
	for {
		e.c.skipRun(' ')
		b, ok := e.c.peek()
		if !ok {
			return
		}
		if b == '\n' {
			e.c.advance()
			return
		}
		if b == ':' {
			e.parseAttribute(vcSameLine)
			continue
		}
		break
	}
	e.parseProse(false)
}

// parseEmbedded consumes an embedded element '|{name attrs content}' at the
// cursor's '|'. The body is brace-balanced and may span lines; at end of
// stream the element is reported unclosed and closed synthetically.
func (e *engine) parseEmbedded() {
	start := e.c.pos
	e.c.advanceN(2) // "|{"
	name, hasName := e.parseName()
	e.emit(event.Event{
		Kind:    event.KindEmbeddedStart,
		Name:    name,
		HasName: hasName,
		Span:    event.Span{Start: start, End: e.c.pos},
	})
	e.parseIdentity()
	for {
		e.c.skipRun(' ')
		b, ok := e.c.peek()
		if !ok {
			break
		}
		if b == ':' {
			e.parseAttribute(vcEmbedded)
			continue
		}
		break
	}
	if !e.parseProse(true) {
		e.emitError(event.ErrUnclosedEmbedded, start, e.c.pos)
	}
	e.emitMarker(event.KindEmbeddedEnd, e.c.pos, e.c.pos)
}
