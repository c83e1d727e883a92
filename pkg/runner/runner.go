package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/udonlang/udon/pkg/analysis"
)

// Run discovers files under opts.Paths and parses them concurrently with a
// worker pool. The returned result is ordered deterministically by path
// regardless of worker completion order. Context cancellation stops the run
// early with whatever was collected.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild path order afterwards.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// ParseFile reads and parses one file, returning its summary.
func ParseFile(path string) (*analysis.Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	summary, err := analysis.Summarize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return summary, nil
}

func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		summary, err := ParseFile(path)
		if err != nil {
			outcome.Err = err
		} else {
			outcome.Summary = summary
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
