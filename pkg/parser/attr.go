package parser

import (
	"github.com/udonlang/udon/pkg/arena"
	"github.com/udonlang/udon/pkg/event"
)

// valueCtx selects the terminator set for bare (unquoted) values. The same
// byte can end a value in one context and be literal in another, so this is
// load-bearing: ']' terminates inside an array but not in a block attribute.
type valueCtx int

const (
	vcBlock valueCtx = iota
	vcSameLine
	vcEmbedded
	vcArray
)

func (vc valueCtx) terminators() string {
	switch vc {
	case vcBlock:
		return "\n"
	case vcSameLine:
		return " \n"
	case vcEmbedded:
		return " }\n"
	default:
		return " ]\n"
	}
}

// flagFollower reports whether b after an attribute key means the key had no
// value (flag form, implicitly true) in this context.
func (vc valueCtx) flagFollower(b byte) bool {
	switch b {
	case ':', '\n', '|':
		return true
	case '}':
		return vc == vcEmbedded
	case ']':
		return vc == vcArray
	}
	return false
}

// parseAttribute consumes ':key value' at the cursor's ':'. A key with no
// value is a flag and reports true. ':[id]' is an attribute-merge
// reference, not a key.
func (e *engine) parseAttribute(vc valueCtx) {
	start := e.c.pos
	e.c.advance()
	if b, ok := e.c.peek(); ok && b == '[' {
		e.parseBracketRef(start, event.KindAttributeMerge)
		return
	}
	m := e.c.mark()
	for {
		b, ok := e.c.peek()
		if !ok || !isNameByte(b) {
			break
		}
		e.c.advance()
	}
	e.emitData(event.KindAttribute, e.c.slice(m, 0), start, e.c.pos)

	b, ok := e.c.peek()
	if !ok || b == '\n' || vc.flagFollower(b) {
		e.emitBoolTrue(start)
		return
	}
	if b == ' ' {
		e.c.skipRun(' ')
		b, ok = e.c.peek()
		if !ok || vc.flagFollower(b) {
			e.emitBoolTrue(start)
			return
		}
	}
	e.parseValue(vc)
}

func (e *engine) emitBoolTrue(start int64) {
	e.emit(event.Event{
		Kind: event.KindBoolValue,
		Bool: true,
		Span: event.Span{Start: start, End: e.c.pos},
	})
}

// parseValue consumes one value at the cursor: quoted string, array,
// reference, embedded element, interpolation, or a typed bare token whose
// end is decided by the context's terminator set.
func (e *engine) parseValue(vc valueCtx) {
	b, ok := e.c.peek()
	if !ok {
		return
	}
	switch b {
	case '"', '\'':
		e.parseQuotedValue()
		return
	case '[':
		e.parseArray()
		return
	case '@':
		if nb, ok := e.c.peekAt(1); ok && nb == '[' {
			e.parseIdReference()
			return
		}
	case '|':
		if nb, ok := e.c.peekAt(1); ok && nb == '{' {
			e.parseEmbedded()
			return
		}
	case '!':
		if nb, ok := e.c.peekAt(1); ok && nb == '{' {
			e.parseBang()
			return
		}
	}
	e.parseBareValue(vc)
}

// parseBareValue scans to the context's terminator set and types the token
// lexically: number, boolean, nil, rational, complex, else bare string.
func (e *engine) parseBareValue(vc valueCtx) {
	m := e.c.mark()
	e.c.scanTo(vc.terminators())
	end := e.c.pos
	// Block values run to end of line; trailing spaces are not content.
	for end > m && e.arena.ByteAt(end-1) == ' ' {
		end--
	}
	if end == m {
		return
	}
	s := e.arena.SliceAt(m, end)
	cl := classifyValue(e.arena.Resolve(s))
	ev := event.Event{Kind: cl.kind, Span: event.Span{Start: m, End: end}}
	switch cl.kind {
	case event.KindStringValue:
		ev.Data = s
	case event.KindBoolValue:
		ev.Bool = cl.b
	case event.KindIntValue:
		ev.Int = cl.i
	case event.KindFloatValue:
		ev.Float = cl.f
	case event.KindRationalValue:
		ev.Int = cl.i
		ev.Den = cl.den
	case event.KindComplexValue:
		ev.Float = cl.f
		ev.Imag = cl.imag
	}
	e.emit(ev)
}

// parseQuotedToken consumes a quoted token at the cursor's quote and
// returns the inner slice. Backslash escapes the next byte; the content may
// span lines and chunk boundaries (reassembled through a synthetic chunk).
// Unterminated input emits the unclosed-string error and reports false.
func (e *engine) parseQuotedToken() (arena.Slice, bool) {
	start := e.c.pos
	q, _ := e.c.peek()
	e.c.advance()
	m := e.c.mark()
	delims := string([]byte{q, '\\'})
	for {
		d, ok := e.c.scanTo(delims)
		if !ok {
			e.emitError(event.ErrUnclosedString, start, e.c.pos)
			return arena.Slice{}, false
		}
		if d == '\\' {
			e.c.advance()
			if _, ok := e.c.peek(); !ok {
				e.emitError(event.ErrUnclosedString, start, e.c.pos)
				return arena.Slice{}, false
			}
			e.c.advance()
			continue
		}
		s := e.c.slice(m, 0)
		e.c.advance()
		return s, true
	}
}

// parseQuotedValue consumes a quoted string value. Unterminated at end of
// stream is an error event, not a value.
func (e *engine) parseQuotedValue() {
	m := e.c.pos + 1
	s, ok := e.parseQuotedToken()
	if !ok {
		return
	}
	e.emit(event.Event{
		Kind: event.KindQuotedStringValue,
		Data: s,
		Span: event.Span{Start: m, End: e.c.pos - 1},
	})
}

// parseArray consumes '[item item ...]' at the cursor's '['. Items are
// values in array context; nesting is unbounded. Items may continue on
// following lines until the closing ']'.
func (e *engine) parseArray() {
	start := e.c.pos
	e.c.advance()
	e.emitMarker(event.KindArrayStart, start, e.c.pos)
	for {
		b, ok := e.c.peek()
		if !ok {
			e.emitError(event.ErrUnclosedArray, start, e.c.pos)
			break
		}
		if b == ' ' || b == '\n' {
			e.c.advance()
			continue
		}
		if b == ']' {
			e.c.advance()
			break
		}
		e.parseValue(vcArray)
	}
	e.emitMarker(event.KindArrayEnd, e.c.pos, e.c.pos)
}

// parseIdReference consumes '@[id]' at the cursor's '@'.
func (e *engine) parseIdReference() {
	start := e.c.pos
	e.c.advance()
	e.parseBracketRef(start, event.KindIdReference)
}

// parseBracketRef consumes '[id]' with the marker byte already consumed and
// emits the given reference kind. An unterminated bracket is reported and
// the line's remainder is left in place.
func (e *engine) parseBracketRef(start int64, kind event.Kind) {
	e.c.advance() // '['
	m := e.c.mark()
	d, ok := e.c.scanTo("]\n")
	if !ok || d == '\n' {
		e.emitError(event.ErrUnclosedReference, start, e.c.pos)
		return
	}
	s := e.c.slice(m, 0)
	e.c.advance()
	e.emitData(kind, s, start, e.c.pos)
}
