package zaplog

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	h := log.NewHelper(logger)
	h.Infow("msg", "movie added", "id", 603)
	h.Errorf("failed: %s", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "movie added", entries[0].Message)
	assert.Equal(t, int64(603), entries[0].ContextMap()["id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "failed: boom", entries[1].Message)
}

func TestLoggerOddKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	require.NoError(t, logger.Log(log.LevelInfo, "lonely"))
	require.Len(t, logs.All(), 1)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestNewProductionLevel(t *testing.T) {
	l, err := NewProduction("warn")
	require.NoError(t, err)
	assert.False(t, l.log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.log.Core().Enabled(zapcore.WarnLevel))

	l, err = NewProduction("nonsense")
	require.NoError(t, err)
	assert.True(t, l.log.Core().Enabled(zapcore.InfoLevel))
}
