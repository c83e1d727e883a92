package parser

import (
	"errors"
	"reflect"
	"testing"

	"github.com/udonlang/udon/pkg/event"
)

// invarianceDocs exercise every construct across chunk boundaries.
var invarianceDocs = []string{
	"|greeting Hello world\n",
	"|a\n  |b[x].cls :k1 v1 :k2 42\n    deep prose\n|c tail\n",
	"|cfg\n  :host localhost\n  :ratio 1/3r\n  :tags [a b [c] 3.5]\n",
	"text with |{em inline} and @[ref] and !{{interp {x}}} mixed\n",
	"!:raw: head\n  verbatim {body}\n\n  more\nafter\n",
	"|code\n  ```go\n  if x { y() }\n  ```\n  done\n",
	"a ;{multi\nline comment} b\n;line comment\n",
	"|t :title \"sp aced\" :flag\n",
	"'|escaped and don't\n",
	"|u\n\tbad tab\n  ok\n",
	"|broken :q \"never closed",
}

// feedChunked parses input split at every width-sized boundary and returns
// the merged rendering.
func feedChunked(t *testing.T, input string, width int) []string {
	t.Helper()
	var events []event.Event
	p := NewCallback(func(ev event.Event) { events = append(events, ev) })
	data := []byte(input)
	for len(data) > 0 {
		n := width
		if n > len(data) {
			n = len(data)
		}
		if _, err := p.Feed(data[:n]); err != nil {
			t.Fatalf("Feed: %v", err)
		}
		data = data[n:]
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := event.CheckBalanced(events); err != nil {
		t.Fatalf("unbalanced stream: %v", err)
	}
	return render(p, events, true)
}

func TestChunkingInvariance(t *testing.T) {
	for _, doc := range invarianceDocs {
		whole := feedChunked(t, doc, len(doc))
		for _, width := range []int{1, 2, 3, 5, 7} {
			got := feedChunked(t, doc, width)
			if !reflect.DeepEqual(got, whole) {
				t.Errorf("doc %q, width %d:\n got %v\nwant %v", doc, width, got, whole)
			}
		}
	}
}

func TestParseConvenience(t *testing.T) {
	var kinds []event.Kind
	err := Parse([]byte("|x hi\n"), func(ev event.Event) {
		kinds = append(kinds, ev.Kind)
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []event.Kind{event.KindElementStart, event.KindText, event.KindElementEnd}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
}

func TestBufferedReadLoop(t *testing.T) {
	doc := "|e\n"
	for i := 0; i < 12; i++ {
		doc += "  :key value-with-some-text\n"
	}

	p := New(16)
	res, err := p.Feed([]byte(doc))
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if !res.BufferFull {
		t.Fatal("expected BufferFull on a small buffer")
	}
	if res.Consumed != len(doc) {
		t.Fatalf("Consumed = %d, want %d", res.Consumed, len(doc))
	}

	// A full buffer rejects further input without consuming.
	res2, err := p.Feed([]byte("more"))
	if err != nil {
		t.Fatalf("Feed while full: %v", err)
	}
	if !res2.BufferFull || res2.Consumed != 0 {
		t.Fatalf("Feed while full = %+v, want BufferFull and Consumed 0", res2)
	}

	var events []event.Event
	drain := func() {
		for {
			ev, ok := p.Read()
			if !ok {
				return
			}
			events = append(events, ev)
		}
	}
	drain()
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	drain()

	if err := event.CheckBalanced(events); err != nil {
		t.Fatalf("unbalanced stream: %v", err)
	}
	// ElementStart + End, 12 attribute/value pairs.
	if want := 2 + 12*2; len(events) != want {
		t.Fatalf("got %d events, want %d", len(events), want)
	}
}

func TestFinishReportsUnclosed(t *testing.T) {
	p := New(64)
	if _, err := p.Feed([]byte("|t :q \"open")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	var events []event.Event
	for {
		ev, ok := p.Read()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	if err := event.CheckBalanced(events); err != nil {
		t.Fatalf("unbalanced stream: %v", err)
	}
	sawErr := false
	for _, ev := range events {
		if ev.IsError() && ev.Err == event.ErrUnclosedString {
			sawErr = true
		}
	}
	if !sawErr {
		t.Fatal("no unclosed-string error at end of input")
	}
}

func TestErrFinished(t *testing.T) {
	p := New(16)
	if err := p.Finish(); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if err := p.Finish(); !errors.Is(err, ErrFinished) {
		t.Fatalf("second Finish = %v, want ErrFinished", err)
	}
	if _, err := p.Feed([]byte("x")); !errors.Is(err, ErrFinished) {
		t.Fatalf("Feed after Finish = %v, want ErrFinished", err)
	}
}

func TestReset(t *testing.T) {
	doc := "|a\n  |b :k 1\n    text\n"

	run := func(p *Parser) []string {
		t.Helper()
		var events []event.Event
		if _, err := p.Feed([]byte(doc)); err != nil {
			t.Fatalf("Feed: %v", err)
		}
		if err := p.Finish(); err != nil {
			t.Fatalf("Finish: %v", err)
		}
		for {
			ev, ok := p.Read()
			if !ok {
				break
			}
			events = append(events, ev)
		}
		return render(p, events, true)
	}

	p := New(64)
	first := run(p)
	p.Reset()
	second := run(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-parse after Reset differs:\n got %v\nwant %v", second, first)
	}
}

func TestResetMidParse(t *testing.T) {
	p := New(16)
	// Park the engine mid-token.
	if _, err := p.Feed([]byte("|a\n  :key \"unfin")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	p.Reset()

	var events []event.Event
	if _, err := p.Feed([]byte("|fresh ok\n")); err != nil {
		t.Fatalf("Feed after Reset: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish after Reset: %v", err)
	}
	for {
		ev, ok := p.Read()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	got := render(p, events, true)
	want := []string{"ElementStart(fresh)", "Text(ok)", "ElementEnd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after Reset:\n got %v\nwant %v", got, want)
	}
}

func TestResetCallbackMode(t *testing.T) {
	var count int
	p := NewCallback(func(event.Event) { count++ })
	if _, err := p.Feed([]byte("|open :k ")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	p.Reset()
	count = 0
	if _, err := p.Feed([]byte("|x\n")); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if count != 2 {
		t.Fatalf("got %d events after Reset, want 2", count)
	}
}

func TestReadInCallbackMode(t *testing.T) {
	p := NewCallback(func(event.Event) {})
	if _, ok := p.Read(); ok {
		t.Fatal("Read in callback mode reported an event")
	}
}
