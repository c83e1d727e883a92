package event

import "testing"

func TestCheckBalanced(t *testing.T) {
	ev := func(kinds ...Kind) []Event {
		out := make([]Event, len(kinds))
		for i, k := range kinds {
			out[i] = Event{Kind: k}
		}
		return out
	}

	tests := []struct {
		name    string
		events  []Event
		wantErr bool
	}{
		{"empty", nil, false},
		{"single pair", ev(KindElementStart, KindElementEnd), false},
		{
			"nested",
			ev(KindElementStart, KindEmbeddedStart, KindText, KindEmbeddedEnd, KindElementEnd),
			false,
		},
		{
			"content only",
			ev(KindText, KindAttribute, KindIntValue),
			false,
		},
		{"unclosed", ev(KindElementStart), true},
		{"stray end", ev(KindElementEnd), true},
		{
			"crossed pairs",
			ev(KindElementStart, KindArrayStart, KindElementEnd, KindArrayEnd),
			true,
		},
		{
			"wrong end kind",
			ev(KindCommentStart, KindDirectiveEnd),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBalanced(tt.events)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckBalanced() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
