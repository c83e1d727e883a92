package runner

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clean.udon"), "|doc\n  :title good\n")
	writeFile(t, filepath.Join(dir, "broken.udon"), "|doc :q \"unclosed")

	result, err := Run(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesDiscovered != 2 || result.Stats.FilesParsed != 2 {
		t.Fatalf("Stats = %+v, want 2 discovered and parsed", result.Stats)
	}
	if result.Stats.FilesWithDiagnostics != 1 || result.Stats.DiagnosticsTotal != 1 {
		t.Fatalf("Stats = %+v, want one file with one diagnostic", result.Stats)
	}
	if !result.HasDiagnostics() {
		t.Fatal("HasDiagnostics = false")
	}
	if result.HasFailures() {
		t.Fatal("HasFailures = true with no unreadable files")
	}

	// Deterministic path order regardless of worker scheduling.
	if len(result.Files) != 2 ||
		result.Files[0].Path != filepath.Join(dir, "broken.udon") ||
		result.Files[1].Path != filepath.Join(dir, "clean.udon") {
		t.Fatalf("Files out of order: %v, %v", result.Files[0].Path, result.Files[1].Path)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	result, err := Run(context.Background(), Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Fatalf("Run on empty dir = %+v", result.Stats)
	}
}

func TestRunManyFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		writeFile(t, filepath.Join(dir, name+".udon"), "|"+name+" content\n")
	}

	result, err := Run(context.Background(), Options{WorkingDir: dir, Jobs: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.FilesParsed != 8 {
		t.Fatalf("FilesParsed = %d, want 8", result.Stats.FilesParsed)
	}
	if result.Stats.ElementsTotal != 8 {
		t.Fatalf("ElementsTotal = %d, want 8", result.Stats.ElementsTotal)
	}
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i-1].Path >= result.Files[i].Path {
			t.Fatalf("Files not sorted: %v before %v", result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.udon"), "|a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Options{WorkingDir: dir}); err == nil {
		t.Fatal("Run with cancelled context succeeded")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.udon")
	writeFile(t, path, "|a\n  |b\n")

	sum, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if sum.Elements != 2 {
		t.Fatalf("Elements = %d, want 2", sum.Elements)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.udon")); err == nil {
		t.Fatal("ParseFile of missing file succeeded")
	}
}
