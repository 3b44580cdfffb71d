package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jshobe/secrethub-go/pkg/secrethub/logging"
)

func TestRedactedAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.With("op", "Client_Write").Debug(context.Background(), "secret written", logging.Redacted("value"))

	out := buf.String()
	assert.Contains(t, out, "op=Client_Write")
	assert.Contains(t, out, "value="+logging.Placeholder())
}

func TestDiscardDropsRecords(t *testing.T) {
	logger := logging.Discard()
	// Nothing to observe; the call must simply not panic.
	logger.Error(context.Background(), "ignored", "k", "v")
	logger.With("a", 1).Info(context.Background(), "ignored")
}

func TestNewNilUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	logging.New(nil).Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
