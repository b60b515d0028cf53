package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init("info", "text", nil) })

	t.Run("rejects unknown level", func(t *testing.T) {
		assert.Error(t, Init("chatty", "text", &bytes.Buffer{}))
	})

	t.Run("filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Init("warn", "text", &buf))

		Infof("hidden %d", 1)
		Warnf("shown %d", 2)

		assert.NotContains(t, buf.String(), "hidden 1")
		assert.Contains(t, buf.String(), "shown 2")
		assert.False(t, IsDebug())
	})

	t.Run("json format with fields", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Init("debug", "json", &buf))

		WithFields(logrus.Fields{"job": "abc"}).Info("rendering")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "rendering", entry["msg"])
		assert.Equal(t, "abc", entry["job"])
		assert.True(t, IsDebug())
	})

	t.Run("text output to buffer has no colour codes", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Init("info", "text", &buf))

		Errorf("boom")

		assert.Contains(t, buf.String(), "boom")
		assert.NotContains(t, buf.String(), "\x1b[")
	})
}
