package parser

import "github.com/udonlang/udon/pkg/event"

// sink receives events from the grammar engine in emission order. Both
// realizations deliver every event exactly once and never reorder.
type sink interface {
	emit(ev event.Event)
}

// ringSink buffers events in a bounded ring. When the ring is full the
// engine is suspended via wait until the consumer drains; this is the
// backpressure point surfaced as FeedResult.BufferFull.
type ringSink struct {
	ring *eventRing
	wait func()
}

func (s *ringSink) emit(ev event.Event) {
	for s.ring.Full() {
		s.wait()
	}
	s.ring.Push(ev)
}

// callbackSink hands each event to the caller synchronously. Backpressure is
// whatever the callback does.
type callbackSink struct {
	fn func(event.Event)
}

func (s *callbackSink) emit(ev event.Event) {
	s.fn(ev)
}

// countingSink wraps another sink and counts deliveries, so Feed can report
// how many events a call produced.
type countingSink struct {
	inner sink
	count int
}

func (s *countingSink) emit(ev event.Event) {
	s.inner.emit(ev)
	s.count++
}
