package logging

import (
	"alcyxob/exercise-tracker/internal/config"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	log.WithField("user", "alice").Info("registered")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "registered", line["message"])
	assert.Equal(t, "info", line["severity"])
	assert.Equal(t, "alice", line["user"])
	assert.Contains(t, line, "timestamp")
}

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, New(config.LogConfig{Level: "warn"}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(config.LogConfig{Level: "chatty"}).GetLevel())
}

func TestNew_TextFormat(t *testing.T) {
	log := New(config.LogConfig{Format: "text"})
	_, ok := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
