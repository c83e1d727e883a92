package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udonlang/udon/internal/logging"
	"github.com/udonlang/udon/internal/ui/pretty"
	"github.com/udonlang/udon/pkg/event"
	"github.com/udonlang/udon/pkg/langdetect"
	"github.com/udonlang/udon/pkg/parser"
)

func newEventsCommand(flags *rootFlags) *cobra.Command {
	var format string
	var detectLang bool

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Dump the event stream for a document",
		Long: `Parse a document and print every emitted event in order, one per
line (text) or as a JSON array. Reads standard input when the file
argument is "-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Format
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			logging.Default().Debug("parsing",
				logging.FieldPath, path,
				logging.FieldBytes, len(data),
				logging.FieldCapacity, cfg.BufferCapacity,
			)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return dumpJSON(out, data, cfg.BufferCapacity)
			case "text":
				styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
				return dumpText(out, data, cfg.BufferCapacity, styles, detectLang || cfg.DetectLanguage)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json")
	cmd.Flags().BoolVar(&detectLang, "detect-language", false,
		"detect the language of freeform blocks without an info string")

	return cmd
}

// drain runs the buffered feed/read loop over one whole document, calling
// fn for each event. Read resumes a parse suspended on a full buffer, so
// the loop is the same regardless of buffer capacity.
func drain(p *parser.Parser, data []byte, fn func(event.Event)) error {
	if _, err := p.Feed(data); err != nil {
		return err
	}
	for {
		ev, ok := p.Read()
		if !ok {
			break
		}
		fn(ev)
	}
	if err := p.Finish(); err != nil {
		return err
	}
	for {
		ev, ok := p.Read()
		if !ok {
			return nil
		}
		fn(ev)
	}
}

func dumpText(out io.Writer, data []byte, capacity int, styles *pretty.Styles, detectLang bool) error {
	w := bufio.NewWriter(out)
	p := parser.New(capacity)

	resolve := func(ev event.Event) (string, string) {
		var name, payload string
		if ev.HasName {
			name = string(p.Resolve(ev.Name))
		}
		if !ev.Data.IsEmpty() {
			payload = string(p.Resolve(ev.Data))
		}
		return name, payload
	}

	depth := 0
	var freeformBody []byte
	inFreeform := false

	err := drain(p, data, func(ev event.Event) {
		if ev.Kind.IsEnd() {
			depth--
		}
		fmt.Fprintln(w, styles.FormatEvent(ev, depth, resolve))
		if ev.Kind.IsStart() {
			depth++
		}

		if !detectLang {
			return
		}
		switch ev.Kind {
		case event.KindFreeformStart:
			inFreeform = !ev.HasName
			freeformBody = freeformBody[:0]
		case event.KindRawContent:
			if inFreeform {
				freeformBody = append(freeformBody, p.Resolve(ev.Data)...)
			}
		case event.KindFreeformEnd:
			if inFreeform {
				lang := langdetect.Detect(freeformBody)
				fmt.Fprintln(w, styles.Dim.Render(
					fmt.Sprintf("%sdetected language: %s",
						strings.Repeat("  ", depth+1), lang)))
				inFreeform = false
			}
		}
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

// jsonEvent is the wire shape of one event in JSON output.
type jsonEvent struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name,omitempty"`
	Raw     bool     `json:"raw,omitempty"`
	Payload string   `json:"payload,omitempty"`
	Bool    *bool    `json:"bool,omitempty"`
	Int     *int64   `json:"int,omitempty"`
	Den     *int64   `json:"den,omitempty"`
	Float   *float64 `json:"float,omitempty"`
	Imag    *float64 `json:"imag,omitempty"`
	Err     string   `json:"error,omitempty"`
	Start   int64    `json:"start"`
	End     int64    `json:"end"`
}

func dumpJSON(out io.Writer, data []byte, capacity int) error {
	p := parser.New(capacity)
	var events []jsonEvent

	err := drain(p, data, func(ev event.Event) {
		je := jsonEvent{
			Kind:  ev.Kind.String(),
			Raw:   ev.Raw,
			Start: ev.Span.Start,
			End:   ev.Span.End,
		}
		if ev.HasName {
			je.Name = string(p.Resolve(ev.Name))
		}
		if !ev.Data.IsEmpty() {
			je.Payload = string(p.Resolve(ev.Data))
		}
		switch ev.Kind {
		case event.KindBoolValue:
			je.Bool = &ev.Bool
		case event.KindIntValue:
			je.Int = &ev.Int
		case event.KindRationalValue:
			je.Int = &ev.Int
			je.Den = &ev.Den
		case event.KindFloatValue:
			je.Float = &ev.Float
		case event.KindComplexValue:
			je.Float = &ev.Float
			je.Imag = &ev.Imag
		case event.KindError:
			je.Err = ev.Err.String()
		}
		events = append(events, je)
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
