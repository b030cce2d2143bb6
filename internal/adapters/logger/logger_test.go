package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"go.trai.ch/brandlay/internal/adapters/logger"
	"go.trai.ch/brandlay/internal/core/domain"
)

func TestLogger_Error_Chain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := logger.NewWithOutput(buf, false, false)

	cause := errors.New("open brandlay.yaml: permission denied")
	err := zerr.Wrap(cause, domain.ErrConfigReadFailed.Error())
	err = zerr.With(err, "path", "brandlay.yaml")
	err = zerr.Wrap(err, "failed to start session")

	log.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.NewWithOutput(buf, false, false).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewWithOutput(buf, true, false)

	log.Info("brands discovered", "count", 2)
	log.Debug("hidden")
	log.Error(zerr.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "brands discovered", first["msg"])
	assert.InDelta(t, 2, first["count"], 0)

	var second map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &second))
	assert.Equal(t, "ERROR", second["level"])
	assert.Equal(t, "boom", second["error"])
}

func TestLogger_Verbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := logger.NewWithOutput(buf, false, false)

	log.Debug("dropped")
	log.SetVerbose(true)
	log.Debug("kept", "id", "/src/App.tsx")
	log.Warn("careful")

	assert.Equal(t, "● kept id=/src/App.tsx\n! careful\n", buf.String())
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.NewWithOutput(buf, false, false)
	log.SetJSON(true)
	log.Info("switched")

	assert.Contains(t, buf.String(), `"msg":"switched"`)
}
