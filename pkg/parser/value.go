package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/udonlang/udon/pkg/event"
)

// classified is the outcome of lexically typing a bare value token.
type classified struct {
	kind event.Kind
	b    bool
	i    int64
	den  int64
	f    float64
	imag float64
}

// classifyValue types a complete bare token. Typing is trial-matching on
// the whole token: "true-flag" is a bare string, never a boolean followed
// by garbage, because classification happens after the token's end is
// known. Overflowing numerics fall back to bare string rather than
// saturating.
func classifyValue(tok []byte) classified {
	str := classified{kind: event.KindStringValue}
	if len(tok) == 0 {
		return str
	}
	switch string(tok) {
	case "true":
		return classified{kind: event.KindBoolValue, b: true}
	case "false":
		return classified{kind: event.KindBoolValue}
	case "null", "nil", "~":
		return classified{kind: event.KindNilValue}
	}
	if !leadsNumeric(tok[0]) {
		return str
	}
	last := tok[len(tok)-1]
	if last == 'r' {
		if num, den, ok := parseRational(tok[:len(tok)-1]); ok {
			return classified{kind: event.KindRationalValue, i: num, den: den}
		}
		return str
	}
	if last == 'i' && len(tok) > 1 {
		if c, err := strconv.ParseComplex(string(tok), 128); err == nil {
			return classified{kind: event.KindComplexValue, f: real(c), imag: imag(c)}
		}
		return str
	}
	if v, ok := parseInteger(string(tok)); ok {
		return classified{kind: event.KindIntValue, i: v}
	}
	if isFloatShape(tok) {
		if f, err := strconv.ParseFloat(string(tok), 64); err == nil {
			return classified{kind: event.KindFloatValue, f: f}
		}
	}
	return str
}

// leadsNumeric reports whether b can begin a numeric token. Words like
// "Infinity" must stay strings, so only digits, signs, and a leading dot
// enter the numeric trials.
func leadsNumeric(b byte) bool {
	return b >= '0' && b <= '9' || b == '+' || b == '-' || b == '.'
}

// parseRational parses "num/den" (the trailing 'r' already stripped).
func parseRational(body []byte) (int64, int64, bool) {
	slash := bytes.IndexByte(body, '/')
	if slash <= 0 || slash == len(body)-1 {
		return 0, 0, false
	}
	num, ok := parseInteger(string(body[:slash]))
	if !ok {
		return 0, 0, false
	}
	den, ok := parseInteger(string(body[slash+1:]))
	if !ok {
		return 0, 0, false
	}
	return num, den, true
}

// parseInteger parses a signed integer with the notation's radix prefixes
// (0x hex, 0o octal, 0b binary, 0d explicit decimal) and underscore digit
// separators. Unprefixed tokens are decimal even with leading zeros.
func parseInteger(s string) (int64, bool) {
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base, s = 16, s[2:]
		case 'o':
			base, s = 8, s[2:]
		case 'b':
			base, s = 2, s[2:]
		case 'd':
			base, s = 10, s[2:]
		}
	}
	s, ok := dropSeparators(s)
	if !ok || s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(sign+s, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// dropSeparators removes underscore separators, rejecting leading,
// trailing, or doubled separators.
func dropSeparators(s string) (string, bool) {
	if strings.IndexByte(s, '_') < 0 {
		return s, true
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || s[i-1] == '_' || s[i+1] == '_' {
			return "", false
		}
	}
	return string(out), true
}

// isFloatShape gates the float trial to decimal tokens containing a point
// or an exponent marker, so plain words and hex-float spellings never reach
// ParseFloat's laxer grammar.
func isFloatShape(tok []byte) bool {
	shaped := false
	for _, b := range tok {
		switch b {
		case '.', 'e', 'E':
			shaped = true
		case 'x', 'X', 'p', 'P':
			return false
		}
	}
	return shaped
}
