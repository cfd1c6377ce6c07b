package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("notebook", "Notebook renamed", map[string]interface{}{"notebook_id": "n1"})
	l.Error("store", "Query failed", map[string]interface{}{"error": errors.New("boom")})
	l.Debug("store", "nil details", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0]
	assert.Equal(t, "Notebook renamed", first.Message)
	assert.Equal(t, "notebook", first.ContextMap()["module"])

	second := entries[1].ContextMap()
	assert.Contains(t, second, "error_ref")

	third := entries[2].ContextMap()
	assert.Equal(t, map[string]interface{}{}, third["details"])
}

func TestIsolatedLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewIsolatedLogger(path)

	l.Info("activity", "page.created", map[string]interface{}{"page_id": "p1"})
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"page.created"`)
	assert.Contains(t, string(data), `"module":"activity"`)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Warn("x", "y", nil)
	})
}
