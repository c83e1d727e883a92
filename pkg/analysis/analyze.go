// Package analysis aggregates a parse's event stream into summary
// statistics and document diagnostics: event counts by kind, structural
// depth, element name frequency, and the in-stream errors with their spans.
package analysis

import (
	"github.com/udonlang/udon/pkg/event"
	"github.com/udonlang/udon/pkg/parser"
)

// Diagnostic is one document error observed in the stream.
type Diagnostic struct {
	// Code is the stable symbolic error code.
	Code event.ErrCode

	// Span is the byte range the error covers.
	Span event.Span
}

// Summary captures aggregate information about one document.
type Summary struct {
	// Events is the total number of events emitted.
	Events int

	// ByKind maps each event kind to its count.
	ByKind map[event.Kind]int

	// Elements is the number of elements (block and embedded).
	Elements int

	// Attributes is the number of attribute keys, synthetic ones included.
	Attributes int

	// MaxDepth is the deepest Start nesting observed.
	MaxDepth int

	// ElementNames maps element names to occurrence counts. Anonymous
	// elements are not counted here.
	ElementNames map[string]int

	// Diagnostics lists every document error in stream order.
	Diagnostics []Diagnostic

	// Bytes is the input size in bytes.
	Bytes int64
}

// HasErrors reports whether any document errors occurred.
func (s *Summary) HasErrors() bool {
	return len(s.Diagnostics) > 0
}

// Collector folds events into a Summary. Feed it as a parse callback or
// drive it manually with Add.
type Collector struct {
	sum     Summary
	depth   int
	resolve func(ev event.Event) string
}

// NewCollector returns an empty collector. resolveName, when non-nil, maps
// a named Start event to its name string for frequency counting.
func NewCollector(resolveName func(ev event.Event) string) *Collector {
	return &Collector{
		sum: Summary{
			ByKind:       make(map[event.Kind]int),
			ElementNames: make(map[string]int),
		},
		resolve: resolveName,
	}
}

// Add folds one event into the summary.
func (c *Collector) Add(ev event.Event) {
	c.sum.Events++
	c.sum.ByKind[ev.Kind]++

	switch {
	case ev.Kind.IsStart():
		c.depth++
		if c.depth > c.sum.MaxDepth {
			c.sum.MaxDepth = c.depth
		}
	case ev.Kind.IsEnd():
		c.depth--
	}

	switch ev.Kind {
	case event.KindElementStart, event.KindEmbeddedStart:
		c.sum.Elements++
		if ev.HasName && c.resolve != nil {
			c.sum.ElementNames[c.resolve(ev)]++
		}
	case event.KindAttribute:
		c.sum.Attributes++
	case event.KindError:
		c.sum.Diagnostics = append(c.sum.Diagnostics, Diagnostic{Code: ev.Err, Span: ev.Span})
	}
}

// Summary returns the aggregate built so far.
func (c *Collector) Summary() *Summary {
	return &c.sum
}

// Summarize parses a whole document and returns its summary. Document
// errors land in the summary's diagnostics; the returned error is reserved
// for caller-contract violations.
func Summarize(data []byte) (*Summary, error) {
	var p *parser.Parser
	c := NewCollector(func(ev event.Event) string {
		return string(p.Resolve(ev.Name))
	})
	p = parser.NewCallback(c.Add)
	if _, err := p.Feed(data); err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	s := c.Summary()
	s.Bytes = int64(len(data))
	return s, nil
}
