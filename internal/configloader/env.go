package configloader

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized by applyEnv.
const (
	envColor      = "UDON_COLOR"
	envFormat     = "UDON_FORMAT"
	envCapacity   = "UDON_BUFFER_CAPACITY"
	envDetectLang = "UDON_DETECT_LANGUAGE"
	envJobs       = "UDON_JOBS"
)

// applyEnv overlays UDON_* environment variables onto cfg. Unset or
// malformed values leave the existing setting untouched.
func applyEnv(cfg *Config) {
	if v := os.Getenv(envColor); v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v := os.Getenv(envFormat); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := os.Getenv(envCapacity); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BufferCapacity = n
		}
	}
	if v := os.Getenv(envDetectLang); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DetectLanguage = b
		}
	}
	if v := os.Getenv(envJobs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Jobs = n
		}
	}
}
