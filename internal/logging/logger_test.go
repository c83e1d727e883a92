package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAtLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, "info")

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("shown", FieldPath, "doc.udon")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "doc.udon")
}

func TestNewAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, "debug")
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, "chatty")
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAt(&buf, "info")

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	// Absent logger falls back to the default.
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromContext(nil)) //nolint:staticcheck // nil context fallback is the point
}
