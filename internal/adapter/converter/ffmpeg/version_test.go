package ffmpeg

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolVersion(t *testing.T) {
	t.Run("first line", func(t *testing.T) {
		script := writeScript(t, `[ "$1" = "-version" ] || exit 1
echo "ffmpeg version 7.1 Copyright (c) 2000-2024"
echo "built with gcc"`)

		v, err := NewCapabilities(script, time.Second).Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ffmpeg version 7.1 Copyright (c) 2000-2024", v)
	})

	t.Run("empty output", func(t *testing.T) {
		script := writeScript(t, `exit 0`)
		_, err := NewAudioProbe(script, time.Second).Version(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := NewAudioProbe(filepath.Join(t.TempDir(), "ffprobe"), time.Second).Version(context.Background())
		assert.Error(t, err)
	})
}
