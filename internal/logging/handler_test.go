package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func newTestHandler(buf *bytes.Buffer) *Handler {
	h := NewHandler(buf)
	h.now = func() time.Time { return time.Date(2024, 3, 9, 13, 4, 5, 0, time.UTC) }
	return h
}

func TestHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: newTestHandler(&buf), Level: log.DebugLevel}

	logger.WithFields(log.Fields{
		"name":  "hashmap",
		"to":    107,
		"from":  53,
		"count": 37,
	}).Debug("resizing table")

	require.Equal(t, "[2024-03-09 13:04:05] DEBUG: hashmap: resizing table count=37 from=53 to=107\n", buf.String())
}

func TestHandlerWithoutName(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: newTestHandler(&buf), Level: log.InfoLevel}

	logger.Info("ready")
	logger.Debug("filtered")

	require.Equal(t, "[2024-03-09 13:04:05] INFO: ready\n", buf.String())
}

type failingHandler struct{ err error }

func (f failingHandler) HandleLog(*log.Entry) error { return f.err }

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	boom := errors.New("boom")
	m := NewMultiHandler(newTestHandler(&a), failingHandler{boom}, newTestHandler(&b))
	logger := &log.Logger{Handler: m, Level: log.InfoLevel}

	logger.Warn("tee")

	require.Equal(t, a.String(), b.String())
	require.Contains(t, a.String(), "WARNING: tee")

	err := m.HandleLog(&log.Entry{Logger: logger, Level: log.InfoLevel, Message: "x", Fields: log.Fields{}})
	require.ErrorIs(t, err, boom)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]log.Level{
		"debug":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"ERROR":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}
