// Package configloader resolves the CLI configuration: defaults, an
// upward-discovered project file (.udon.yaml), environment variables
// (UDON_*), then CLI flags, in rising precedence.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file searched for upward
// from the working directory.
const ConfigFileName = ".udon.yaml"

// Config is the resolved CLI configuration.
type Config struct {
	// BufferCapacity is the event-buffer capacity for buffered parses.
	BufferCapacity int `yaml:"buffer_capacity"`

	// Color is the output color mode: auto, always, never.
	Color string `yaml:"color"`

	// Format is the default output format: text or json.
	Format string `yaml:"format"`

	// DetectLanguage enables language detection for freeform blocks that
	// carry no info string.
	DetectLanguage bool `yaml:"detect_language"`

	// Extensions overrides the document file extensions for discovery.
	Extensions []string `yaml:"extensions"`

	// Exclude lists glob patterns skipped during discovery.
	Exclude []string `yaml:"exclude"`

	// Jobs caps the worker count for multi-file runs; 0 means one per CPU.
	Jobs int `yaml:"jobs"`
}

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	return &Config{
		BufferCapacity: 256,
		Color:          "auto",
		Format:         "text",
	}
}

// LoadResult reports where the configuration came from.
type LoadResult struct {
	Config *Config

	// Path is the project file that was loaded, empty when none exists.
	Path string
}

// Load resolves the configuration. An explicit path wins over discovery; a
// missing explicit path is an error, while a missing discovered file is
// not. Environment variables are applied last.
func Load(workDir, explicitPath string) (*LoadResult, error) {
	cfg := Default()
	result := &LoadResult{Config: cfg}

	path := explicitPath
	if path == "" {
		var err error
		path, err = discover(workDir)
		if err != nil {
			return nil, err
		}
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			if explicitPath == "" && errors.Is(err, fs.ErrNotExist) {
				path = ""
			} else {
				return nil, err
			}
		}
		result.Path = path
	}

	applyEnv(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return result, nil
}

// discover walks from workDir to the filesystem root looking for the
// project file.
func discover(workDir string) (string, error) {
	dir := workDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func validate(cfg *Config) error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", cfg.Color)
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (want text or json)", cfg.Format)
	}
	if cfg.BufferCapacity < 0 {
		return fmt.Errorf("invalid buffer_capacity %d", cfg.BufferCapacity)
	}
	return nil
}
