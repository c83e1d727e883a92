package event

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElementStart, "ElementStart"},
		{KindFreeformEnd, "FreeformEnd"},
		{KindText, "Text"},
		{KindError, "Error"},
		{Kind(200), "Kind(?)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEndFor(t *testing.T) {
	pairs := []struct{ start, end Kind }{
		{KindElementStart, KindElementEnd},
		{KindEmbeddedStart, KindEmbeddedEnd},
		{KindDirectiveStart, KindDirectiveEnd},
		{KindArrayStart, KindArrayEnd},
		{KindCommentStart, KindCommentEnd},
		{KindFreeformStart, KindFreeformEnd},
	}
	for _, p := range pairs {
		if got := EndFor(p.start); got != p.end {
			t.Errorf("EndFor(%s) = %s, want %s", p.start, got, p.end)
		}
		if !p.start.IsStart() {
			t.Errorf("%s.IsStart() = false", p.start)
		}
		if !p.end.IsEnd() {
			t.Errorf("%s.IsEnd() = false", p.end)
		}
	}
}

func TestIsContent(t *testing.T) {
	for k := KindText; k <= KindError; k++ {
		if !k.IsContent() {
			t.Errorf("%s.IsContent() = false", k)
		}
		if k.IsStart() || k.IsEnd() {
			t.Errorf("%s classified as bracketed", k)
		}
	}
	if KindElementStart.IsContent() {
		t.Error("ElementStart.IsContent() = true")
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 3, End: 10}).Len(); got != 7 {
		t.Fatalf("Len = %d, want 7", got)
	}
}

func TestErrCodeNames(t *testing.T) {
	tests := []struct {
		code ErrCode
		want string
	}{
		{ErrUnclosedString, "unclosed-string"},
		{ErrTabIndent, "tab-indent"},
		{ErrIncompleteDirective, "incomplete-directive"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrCode.String() = %q, want %q", got, tt.want)
		}
		if tt.code.Message() == "unknown error" {
			t.Errorf("%s has no message", tt.code)
		}
	}
}
