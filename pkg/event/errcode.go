package event

// ErrCode is a stable symbolic code for an in-stream parse error.
// Document errors never abort the parse: the engine emits an Error event
// carrying one of these codes, synthesizes the matching closing behavior,
// and continues.
type ErrCode uint8

const (
	ErrNone ErrCode = iota

	// ErrUnclosedString reports a quoted value with no closing quote
	// before end of input.
	ErrUnclosedString

	// ErrUnclosedArray reports a '[' value with no matching ']'.
	ErrUnclosedArray

	// ErrUnclosedBracket reports an element identity '[id' with no ']'.
	ErrUnclosedBracket

	// ErrUnclosedComment reports a ';{' comment with no matching '}'.
	ErrUnclosedComment

	// ErrUnclosedDirective reports an inline '!{' directive with no
	// matching '}'.
	ErrUnclosedDirective

	// ErrUnclosedEmbedded reports a '|{' element with no matching '}'.
	ErrUnclosedEmbedded

	// ErrUnclosedInterpolation reports a '!{{' with no matching '}}'.
	ErrUnclosedInterpolation

	// ErrUnclosedReference reports a '@[' or ':[' reference with no ']'.
	ErrUnclosedReference

	// ErrUnclosedFreeform reports a backtick fence with no closing fence.
	ErrUnclosedFreeform

	// ErrIncompleteDirective reports a raw directive marker '!:' with no
	// closing ':' after the name.
	ErrIncompleteDirective

	// ErrTabIndent reports a tab character used for indentation; the
	// notation requires spaces. The line is skipped.
	ErrTabIndent
)

var errCodeNames = [...]string{
	ErrNone:                  "none",
	ErrUnclosedString:        "unclosed-string",
	ErrUnclosedArray:         "unclosed-array",
	ErrUnclosedBracket:       "unclosed-bracket",
	ErrUnclosedComment:       "unclosed-comment",
	ErrUnclosedDirective:     "unclosed-directive",
	ErrUnclosedEmbedded:      "unclosed-embedded",
	ErrUnclosedInterpolation: "unclosed-interpolation",
	ErrUnclosedReference:     "unclosed-reference",
	ErrUnclosedFreeform:      "unclosed-freeform",
	ErrIncompleteDirective:   "incomplete-directive",
	ErrTabIndent:             "tab-indent",
}

// String returns the stable symbolic name of the code.
func (c ErrCode) String() string {
	if int(c) < len(errCodeNames) {
		return errCodeNames[c]
	}
	return "errcode(?)"
}

// Message returns a human-readable description of the code.
func (c ErrCode) Message() string {
	switch c {
	case ErrUnclosedString:
		return "unclosed quoted string"
	case ErrUnclosedArray:
		return "unclosed array"
	case ErrUnclosedBracket:
		return "unclosed identity bracket"
	case ErrUnclosedComment:
		return "unclosed brace comment"
	case ErrUnclosedDirective:
		return "unclosed inline directive"
	case ErrUnclosedEmbedded:
		return "unclosed embedded element"
	case ErrUnclosedInterpolation:
		return "unclosed interpolation"
	case ErrUnclosedReference:
		return "unclosed reference"
	case ErrUnclosedFreeform:
		return "unclosed freeform block"
	case ErrIncompleteDirective:
		return "raw directive missing closing ':'"
	case ErrTabIndent:
		return "tab used for indentation (use spaces)"
	default:
		return "unknown error"
	}
}
