// Package runner orchestrates parsing many documents: discovery of input
// files under a set of paths and concurrent per-file parsing with aggregate
// statistics.
package runner

// Options controls multi-file runs.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered documents. Defaults via DefaultExtensions.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers. Zero or negative
	// means one worker per CPU.
	Jobs int
}

// DefaultExtensions returns the default document file extensions.
func DefaultExtensions() []string {
	return []string{".udon", ".ud"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
