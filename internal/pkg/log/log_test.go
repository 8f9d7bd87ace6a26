package log_test

import (
	"context"
	"testing"

	log_internal "cinema-web/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCorrelationID(t *testing.T) {
	t.Run("empty when not set", func(t *testing.T) {
		assert.Equal(t, "", log_internal.CorrelationIDFromContext(context.Background()))
	})

	t.Run("round trip", func(t *testing.T) {
		ctx := log_internal.ContextWithCorrelationID(context.Background(), "abc")
		assert.Equal(t, "abc", log_internal.CorrelationIDFromContext(ctx))
	})
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := log_internal.New(otelzap.New(zap.New(core)))

	ctx := log_internal.ContextWithCorrelationID(context.Background(), "cid-1")
	logger.Error(ctx, "error fetch movies", assert.AnError, 42)

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "error fetch movies", entries[0].Message)
	assert.Equal(t, "cid-1", fields["correlation_id"])
	assert.Equal(t, assert.AnError.Error(), fields["error"])
	assert.EqualValues(t, 42, fields["arg1"])
}
