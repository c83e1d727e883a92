package pretty

import (
	"fmt"
	"strings"

	"github.com/udonlang/udon/pkg/event"
)

// payloadPreviewLen caps how much of a payload is shown per event line.
const payloadPreviewLen = 60

// FormatEvent renders one event as a single indented line: kind, name,
// payload preview, and span. depth controls indentation and is the Start
// nesting depth at the event.
func (s *Styles) FormatEvent(ev event.Event, depth int, resolve func(event.Event) (name, payload string)) string {
	var b strings.Builder

	b.WriteString(s.Depth.Render(strings.Repeat("  ", depth)))
	b.WriteString(s.Kind.Render(ev.Kind.String()))

	name, payload := resolve(ev)
	if ev.HasName {
		b.WriteString(" " + s.Name.Render(name))
	}
	if ev.Raw {
		b.WriteString(" " + s.Dim.Render("(raw)"))
	}

	switch ev.Kind {
	case event.KindBoolValue:
		b.WriteString(" " + s.Payload.Render(fmt.Sprintf("%t", ev.Bool)))
	case event.KindIntValue:
		b.WriteString(" " + s.Payload.Render(fmt.Sprintf("%d", ev.Int)))
	case event.KindFloatValue:
		b.WriteString(" " + s.Payload.Render(fmt.Sprintf("%g", ev.Float)))
	case event.KindRationalValue:
		b.WriteString(" " + s.Payload.Render(fmt.Sprintf("%d/%d", ev.Int, ev.Den)))
	case event.KindComplexValue:
		b.WriteString(" " + s.Payload.Render(fmt.Sprintf("%g%+gi", ev.Float, ev.Imag)))
	case event.KindNilValue:
		b.WriteString(" " + s.Dim.Render("nil"))
	case event.KindError:
		b.WriteString(" " + s.Error.Render(ev.Err.String()))
		b.WriteString(" " + s.Dim.Render(ev.Err.Message()))
	default:
		if payload != "" {
			b.WriteString(" " + s.Payload.Render(preview(payload)))
		}
	}

	b.WriteString(" " + s.Span.Render(fmt.Sprintf("[%d:%d)", ev.Span.Start, ev.Span.End)))
	return b.String()
}

// preview quotes a payload and truncates it for one-line display.
func preview(payload string) string {
	q := fmt.Sprintf("%q", payload)
	if len(q) <= payloadPreviewLen {
		return q
	}
	return q[:payloadPreviewLen-1] + "…"
}
