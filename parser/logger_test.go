package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.Equal(t, NopLogger{}, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	var logger Logger = NewSlogAdapter(slog.New(handler))

	logger.Debug("parsed document", "path", "api.yaml")
	out := buf.String()
	assert.Contains(t, out, "parsed document")
	assert.Contains(t, out, "path=api.yaml")

	buf.Reset()
	logger.With("source", "stdin").Info("filtered")
	out = buf.String()
	assert.Contains(t, out, "filtered")
	assert.Contains(t, out, "source=stdin")
}

func TestSlogAdapterNilDefaults(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.NotNil(t, adapter)
	adapter.Debug("no panic")
}

func TestParserLogging(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	p := New()
	p.Logger = NewSlogAdapter(slog.New(handler))
	_, err := p.ParseBytes("doc.yaml", []byte("openapi: 3.0.0\npaths: {}\n"))
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, buf.String(), "detected source format")
	assert.Contains(t, buf.String(), "parsed document")
}
