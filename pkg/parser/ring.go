package parser

import "github.com/udonlang/udon/pkg/event"

// eventRing is a bounded FIFO of events with power-of-two capacity, so
// index wrapping is a mask instead of a modulo.
type eventRing struct {
	buf  []event.Event
	mask int
	head int
	tail int
	n    int
}

const minRingCapacity = 16

func newEventRing(capacity int) *eventRing {
	c := minRingCapacity
	for c < capacity {
		c <<= 1
	}
	return &eventRing{buf: make([]event.Event, c), mask: c - 1}
}

func (r *eventRing) Cap() int    { return len(r.buf) }
func (r *eventRing) Len() int    { return r.n }
func (r *eventRing) Empty() bool { return r.n == 0 }
func (r *eventRing) Full() bool  { return r.n == len(r.buf) }

// Push appends an event. The caller must check Full first; pushing into a
// full ring is a programming error.
func (r *eventRing) Push(ev event.Event) {
	if r.Full() {
		panic("parser: push into full event ring")
	}
	r.buf[r.tail] = ev
	r.tail = (r.tail + 1) & r.mask
	r.n++
}

// Pop removes and returns the oldest event.
func (r *eventRing) Pop() (event.Event, bool) {
	if r.n == 0 {
		return event.Event{}, false
	}
	ev := r.buf[r.head]
	r.buf[r.head] = event.Event{}
	r.head = (r.head + 1) & r.mask
	r.n--
	return ev, true
}

// Clear drops all buffered events, retaining capacity.
func (r *eventRing) Clear() {
	for !r.Empty() {
		r.Pop()
	}
	r.head, r.tail = 0, 0
}
