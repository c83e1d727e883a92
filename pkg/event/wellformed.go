package event

import "fmt"

// CheckBalanced verifies the well-formedness guarantee over an event
// sequence: every Start has exactly one matching End, Ends close in strict
// LIFO order relative to Starts, and no End appears without an open Start.
// Returns nil when the sequence is well-formed.
func CheckBalanced(events []Event) error {
	var stack []Kind
	for i, ev := range events {
		switch {
		case ev.Kind.IsStart():
			stack = append(stack, ev.Kind)
		case ev.Kind.IsEnd():
			if len(stack) == 0 {
				return fmt.Errorf("event %d: %s with no open construct", i, ev.Kind)
			}
			top := stack[len(stack)-1]
			if EndFor(top) != ev.Kind {
				return fmt.Errorf("event %d: %s closes %s", i, ev.Kind, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return fmt.Errorf("%d construct(s) left open, innermost %s", len(stack), stack[len(stack)-1])
	}
	return nil
}
