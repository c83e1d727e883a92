package parser

import (
	"testing"

	"github.com/udonlang/udon/pkg/event"
)

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		tok  string
		kind event.Kind
	}{
		{"true", event.KindBoolValue},
		{"false", event.KindBoolValue},
		{"null", event.KindNilValue},
		{"nil", event.KindNilValue},
		{"~", event.KindNilValue},
		{"truex", event.KindStringValue},
		{"True", event.KindStringValue},

		{"42", event.KindIntValue},
		{"-17", event.KindIntValue},
		{"+8", event.KindIntValue},
		{"007", event.KindIntValue},
		{"0x1F", event.KindIntValue},
		{"0o17", event.KindIntValue},
		{"0b101", event.KindIntValue},
		{"0d09", event.KindIntValue},
		{"1_000_000", event.KindIntValue},

		{"3.14", event.KindFloatValue},
		{"-2.5e3", event.KindFloatValue},
		{"1e5", event.KindFloatValue},
		{".5", event.KindFloatValue},
		{"-.5", event.KindFloatValue},

		{"1/3r", event.KindRationalValue},
		{"-1/2r", event.KindRationalValue},
		{"3+4i", event.KindComplexValue},
		{"2i", event.KindComplexValue},

		// Near-misses stay bare strings.
		{"1__0", event.KindStringValue},
		{"_1", event.KindStringValue},
		{"1_", event.KindStringValue},
		{"1.2.3", event.KindStringValue},
		{"0x1.8p3", event.KindStringValue},
		{"Infinity", event.KindStringValue},
		{"+Inf", event.KindStringValue},
		{"NaN", event.KindStringValue},
		{"/3r", event.KindStringValue},
		{"5r", event.KindStringValue},
		{"i", event.KindStringValue},
		{"abci", event.KindStringValue},
		{"", event.KindStringValue},
		{"99999999999999999999", event.KindStringValue},
		{"hello", event.KindStringValue},
		{"true-flag", event.KindStringValue},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got := classifyValue([]byte(tt.tok))
			if got.kind != tt.kind {
				t.Fatalf("classifyValue(%q).kind = %s, want %s", tt.tok, got.kind, tt.kind)
			}
		})
	}
}

func TestClassifyValuePayloads(t *testing.T) {
	if c := classifyValue([]byte("0x1F")); c.i != 31 {
		t.Errorf("0x1F = %d, want 31", c.i)
	}
	if c := classifyValue([]byte("1_000_000")); c.i != 1000000 {
		t.Errorf("1_000_000 = %d, want 1000000", c.i)
	}
	if c := classifyValue([]byte("-1/2r")); c.i != -1 || c.den != 2 {
		t.Errorf("-1/2r = %d/%d, want -1/2", c.i, c.den)
	}
	if c := classifyValue([]byte("3+4i")); c.f != 3 || c.imag != 4 {
		t.Errorf("3+4i = %g%+gi, want 3+4i", c.f, c.imag)
	}
	if c := classifyValue([]byte("-2.5e3")); c.f != -2500 {
		t.Errorf("-2.5e3 = %g, want -2500", c.f)
	}
	if c := classifyValue([]byte("true")); !c.b {
		t.Error("true classified as false")
	}
	if c := classifyValue([]byte("9223372036854775807")); c.i != 9223372036854775807 {
		t.Errorf("int64 max = %d", c.i)
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"-42", -42, true},
		{"0xff", 255, true},
		{"-0x10", -16, true},
		{"0o777", 511, true},
		{"0b1111", 15, true},
		{"0d123", 123, true},
		{"1_2_3", 123, true},
		{"", 0, false},
		{"0x", 0, false},
		{"abc", 0, false},
		{"12a", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseInteger(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseInteger(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
