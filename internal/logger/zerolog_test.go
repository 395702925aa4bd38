package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/internal/logger"
)

func TestJSONRecordCarriesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, zerolog.InfoLevel, logger.FormatJSON)
	require.NoError(t, err)

	log.Info("driver", "carved", map[string]interface{}{"width": 12})

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "driver", rec["component"])
	assert.Equal(t, "carved", rec["message"])
	assert.EqualValues(t, 12, rec["width"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, zerolog.WarnLevel, logger.FormatJSON)
	require.NoError(t, err)

	log.Debug("x", "hidden", nil)
	log.Info("x", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("x", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, zerolog.DebugLevel, logger.FormatConsole)
	require.NoError(t, err)

	log.Warning("cli", "slow input", nil)
	out := buf.String()
	assert.Contains(t, out, "slow input")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, zerolog.InfoLevel, "xml")
	require.ErrorIs(t, err, logger.ErrBadFormat)
}

func TestParseLevel(t *testing.T) {
	lvl, err := logger.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = logger.ParseLevel("loud")
	require.Error(t, err)
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Info("x", "y", map[string]interface{}{"k": 1})
	})
}
