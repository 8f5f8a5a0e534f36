package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"request_id": "r-1"})

	l.Warn("mark rejected", map[string]any{
		"medication_id": "m-1",
		"err":           errors.New("outside of time window"),
		"":              "ignored",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "mark rejected", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "r-1", ctx["request_id"])
	assert.Equal(t, "m-1", ctx["medication_id"])
	assert.Equal(t, "outside of time window", ctx["err"])
	assert.NotContains(t, ctx, "")
}
