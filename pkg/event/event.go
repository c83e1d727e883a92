// Package event defines the observable output of a streaming parse: a flat,
// ordered sequence of events with no tree behind it. Bracketed kinds come in
// Start/End pairs that close in strict LIFO order; content kinds are
// unpaired leaves. Byte payloads are arena slices, resolved by the consumer.
package event

import (
	"github.com/udonlang/udon/pkg/arena"
)

// Kind classifies a parse event.
type Kind uint8

// Bracketed kinds. Every Start is matched by exactly one End.
const (
	KindInvalid Kind = iota

	KindElementStart
	KindElementEnd
	KindEmbeddedStart
	KindEmbeddedEnd
	KindDirectiveStart
	KindDirectiveEnd
	KindArrayStart
	KindArrayEnd
	KindCommentStart
	KindCommentEnd
	KindFreeformStart
	KindFreeformEnd

	// Content kinds: unpaired, leaf-level.

	KindText
	KindAttribute
	KindNilValue
	KindBoolValue
	KindIntValue
	KindFloatValue
	KindRationalValue
	KindComplexValue
	KindStringValue
	KindQuotedStringValue
	KindRawContent
	KindInterpolation
	KindIdReference
	KindAttributeMerge
	KindError
)

var kindNames = [...]string{
	KindInvalid:           "Invalid",
	KindElementStart:      "ElementStart",
	KindElementEnd:        "ElementEnd",
	KindEmbeddedStart:     "EmbeddedStart",
	KindEmbeddedEnd:       "EmbeddedEnd",
	KindDirectiveStart:    "DirectiveStart",
	KindDirectiveEnd:      "DirectiveEnd",
	KindArrayStart:        "ArrayStart",
	KindArrayEnd:          "ArrayEnd",
	KindCommentStart:      "CommentStart",
	KindCommentEnd:        "CommentEnd",
	KindFreeformStart:     "FreeformStart",
	KindFreeformEnd:       "FreeformEnd",
	KindText:              "Text",
	KindAttribute:         "Attribute",
	KindNilValue:          "NilValue",
	KindBoolValue:         "BoolValue",
	KindIntValue:          "IntValue",
	KindFloatValue:        "FloatValue",
	KindRationalValue:     "RationalValue",
	KindComplexValue:      "ComplexValue",
	KindStringValue:       "StringValue",
	KindQuotedStringValue: "QuotedStringValue",
	KindRawContent:        "RawContent",
	KindInterpolation:     "Interpolation",
	KindIdReference:       "IdReference",
	KindAttributeMerge:    "AttributeMerge",
	KindError:             "Error",
}

// String returns the event kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsStart reports whether the kind opens a bracketed construct.
func (k Kind) IsStart() bool {
	switch k {
	case KindElementStart, KindEmbeddedStart, KindDirectiveStart,
		KindArrayStart, KindCommentStart, KindFreeformStart:
		return true
	}
	return false
}

// IsEnd reports whether the kind closes a bracketed construct.
func (k Kind) IsEnd() bool {
	switch k {
	case KindElementEnd, KindEmbeddedEnd, KindDirectiveEnd,
		KindArrayEnd, KindCommentEnd, KindFreeformEnd:
		return true
	}
	return false
}

// IsContent reports whether the kind is an unpaired leaf event.
func (k Kind) IsContent() bool {
	return k >= KindText && k <= KindError
}

// EndFor returns the matching End kind for a Start kind.
func EndFor(start Kind) Kind {
	// Start/End pairs are adjacent in the enumeration.
	return start + 1
}

// Span is a byte range in the input stream, start inclusive, end exclusive.
type Span struct {
	Start int64
	End   int64
}

// Len returns the length of the span in bytes.
func (s Span) Len() int64 {
	return s.End - s.Start
}

// Event is one observable parse step. A single struct covers every kind;
// which fields are meaningful depends on Kind:
//
//   - ElementStart/EmbeddedStart/DirectiveStart: Name (when HasName), Raw on
//     raw directives.
//   - Attribute: Data is the key bytes.
//   - Text/RawContent/Interpolation/IdReference/AttributeMerge/
//     StringValue/QuotedStringValue: Data is the payload bytes.
//   - BoolValue: Bool. IntValue: Int. FloatValue: Float.
//     RationalValue: Int (numerator) and Den. ComplexValue: Float (real)
//     and Imag.
//   - Error: Err.
type Event struct {
	Kind Kind

	// Name is the element or directive name slice. Meaningful only when
	// HasName is set; anonymous elements carry no name.
	Name    arena.Slice
	HasName bool

	// Data is the byte payload slice for content-carrying kinds.
	Data arena.Slice

	// Raw marks a DirectiveStart whose body is captured verbatim rather
	// than parsed as nested notation.
	Raw bool

	Bool  bool
	Int   int64
	Den   int64
	Float float64
	Imag  float64

	Err ErrCode

	Span Span
}

// IsError reports whether this is an in-stream error event.
func (e Event) IsError() bool {
	return e.Kind == KindError
}
