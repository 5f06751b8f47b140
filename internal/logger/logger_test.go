package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}

func TestLevelsFilterOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestErrorIncludesCause(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("seed unparseable"), "generation failed")

	out := buf.String()
	assert.Contains(t, out, "seed unparseable")
	assert.Contains(t, out, "generation failed")
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"seed": "#1976D2"}).Info("generated")

	assert.Contains(t, buf.String(), "#1976D2")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Debug("no panic")
	log.Info("no panic")
	log.Warn("no panic")
	log.Error(nil, "no panic")
	assert.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
