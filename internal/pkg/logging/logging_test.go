package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samirrijal/isonwater/internal/pkg/logging"
)

func TestFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))
}

func TestFromContext_Scoped(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil)).With("request_id", "abc")

	ctx := logging.WithLogger(context.Background(), l)
	logging.FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
	assert.Same(t, l, logging.FromContext(ctx))
}
