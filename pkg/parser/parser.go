// Package parser implements a streaming, event-based parser for the UDON
// document notation. Input arrives in arbitrary chunks through Feed; output
// is a flat, always well-formed sequence of events, delivered either through
// a bounded buffer drained with Read or through a synchronous callback.
//
// The grammar engine is written as plain recursive descent: one function per
// production, with the call stack serving as the element stack. To let that
// recursion suspend mid-token when input runs out, the engine runs on a
// dedicated goroutine in strict lockstep with the caller. Exactly one of the
// two is ever running; the handoff is a pair of unbuffered channels, so this
// is a coroutine, not concurrency.
package parser

import (
	"errors"

	"github.com/udonlang/udon/pkg/arena"
	"github.com/udonlang/udon/pkg/event"
)

// ErrFinished is returned by Feed and Finish once Finish has been called.
// It is a caller-contract violation, not a document error.
var ErrFinished = errors.New("parser: input already finished")

// errAbort unwinds the engine goroutine during Reset.
var errAbort = errors.New("parser: abort")

// DefaultCapacity is the event-buffer capacity used by Parse.
const DefaultCapacity = 256

// yieldReason tells the caller why the engine suspended.
type yieldReason int

const (
	// yieldNeedInput: the engine consumed all fed bytes and is parked,
	// possibly mid-token, until Feed or Finish.
	yieldNeedInput yieldReason = iota

	// yieldFull: the event ring is full; the engine is parked at an emit
	// point until Read frees a slot.
	yieldFull

	// yieldDone: the engine returned; the document is fully parsed.
	yieldDone
)

// FeedResult reports the outcome of one Feed call.
type FeedResult struct {
	// Consumed is the number of bytes accepted from the input. Bytes are
	// always accepted in full unless the event buffer is full, in which
	// case Consumed is 0 and the same bytes must be fed again after
	// draining.
	Consumed int

	// Events is the number of events emitted during this call.
	Events int

	// BufferFull is set when the event buffer filled up. Drain with Read,
	// then feed remaining input.
	BufferFull bool
}

// Parser is a streaming parser for one document. It is not safe for
// concurrent use; one instance is one thread of control.
type Parser struct {
	arena    *arena.Arena
	ring     *eventRing // nil in callback mode
	callback func(event.Event)
	counter  *countingSink
	capacity int

	resume chan struct{}
	yield  chan yieldReason
	last   yieldReason
	done   bool

	eof      bool // Finish called: no more bytes will arrive
	finished bool // Finish called (sticky until Reset)
	quit     bool // Reset in progress: engine must unwind
}

// New returns a buffered parser. Events accumulate in a bounded buffer of at
// least the given capacity (rounded up to a power of two) and are drained
// with Read. A full buffer suspends parsing until drained.
func New(capacity int) *Parser {
	p := &Parser{
		arena:    arena.New(),
		capacity: capacity,
	}
	p.ring = newEventRing(capacity)
	p.start()
	return p
}

// NewCallback returns a parser that delivers each event to fn synchronously
// during Feed and Finish. Read always reports no event in this mode.
func NewCallback(fn func(event.Event)) *Parser {
	p := &Parser{
		arena:    arena.New(),
		callback: fn,
	}
	p.start()
	return p
}

// Parse feeds data as a single chunk, finishes the stream, and hands every
// event to fn. Convenience wrapper for whole-document inputs.
func Parse(data []byte, fn func(event.Event)) error {
	p := NewCallback(fn)
	if _, err := p.Feed(data); err != nil {
		return err
	}
	return p.Finish()
}

// start launches the engine goroutine and parks it at its first
// need-input point.
func (p *Parser) start() {
	p.resume = make(chan struct{})
	p.yield = make(chan yieldReason)
	go p.run()
	p.last = <-p.yield
	p.done = p.last == yieldDone
}

// run is the engine goroutine body.
func (p *Parser) run() {
	defer func() {
		if r := recover(); r != nil && r != errAbort {
			panic(r)
		}
		p.yield <- yieldDone
	}()

	var out sink
	if p.ring != nil {
		out = &ringSink{ring: p.ring, wait: func() { p.engineYield(yieldFull) }}
	} else {
		out = &callbackSink{fn: p.callback}
	}
	p.counter = &countingSink{inner: out}

	c := newCursor(p.arena, nil)
	c.more = func() bool {
		for !c.avail() {
			if p.eof {
				return false
			}
			p.engineYield(yieldNeedInput)
		}
		return true
	}

	newEngine(p.arena, c, p.counter).parseDocument()
}

// engineYield suspends the engine goroutine until the caller pumps it.
// Runs only on the engine goroutine.
func (p *Parser) engineYield(r yieldReason) {
	p.yield <- r
	<-p.resume
	if p.quit {
		panic(errAbort)
	}
}

// pump resumes the engine and waits for its next suspension.
// Runs only on the caller side.
func (p *Parser) pump() {
	if p.done {
		return
	}
	p.resume <- struct{}{}
	p.last = <-p.yield
	if p.last == yieldDone {
		p.done = true
	}
}

// Feed hands the parser the next chunk of input and parses as far as it
// allows. The chunk is copied; the caller may reuse data.
//
// In buffered mode a full event buffer stops the parse: Feed returns
// Consumed 0 with BufferFull set and the caller must Read before feeding the
// same bytes again. Feed after Finish returns ErrFinished.
func (p *Parser) Feed(data []byte) (FeedResult, error) {
	if p.finished {
		return FeedResult{}, ErrFinished
	}
	if p.last == yieldFull && p.ring.Full() {
		return FeedResult{BufferFull: true}, nil
	}
	if len(data) > 0 {
		p.arena.Push(data)
	}
	before := p.counter.count
	p.pump()
	return FeedResult{
		Consumed:   len(data),
		Events:     p.counter.count - before,
		BufferFull: p.last == yieldFull,
	}, nil
}

// Finish signals end of input. Any constructs still open are reported with
// unclosed errors and closed, so the event stream stays well-formed. In
// buffered mode remaining events may still need draining with Read after
// Finish returns. Calling Finish twice returns ErrFinished.
func (p *Parser) Finish() error {
	if p.finished {
		return ErrFinished
	}
	p.finished = true
	p.eof = true
	for !p.done {
		if p.last == yieldFull && p.ring.Full() {
			return nil
		}
		p.pump()
	}
	return nil
}

// Read returns the next buffered event. It reports false when no event is
// available: either more input is needed or the document is complete and
// drained. Reading frees buffer space and resumes a parse suspended on a
// full buffer.
func (p *Parser) Read() (event.Event, bool) {
	if p.ring == nil {
		return event.Event{}, false
	}
	for p.ring.Empty() {
		if p.done || p.last != yieldFull {
			return event.Event{}, false
		}
		p.pump()
	}
	return p.ring.Pop()
}

// Resolve returns the bytes an event payload slice refers to.
func (p *Parser) Resolve(s arena.Slice) []byte {
	return p.arena.Resolve(s)
}

// Reset discards all parse state and buffered events, retaining allocated
// capacity. The parser is ready for a new document; re-parsing the same
// input yields an identical event stream.
func (p *Parser) Reset() {
	if !p.done {
		p.quit = true
		p.pump()
		for !p.done {
			p.pump()
		}
		p.quit = false
	}
	p.arena.Clear()
	if p.ring != nil {
		p.ring.Clear()
	}
	p.eof = false
	p.finished = false
	p.done = false
	p.start()
}
