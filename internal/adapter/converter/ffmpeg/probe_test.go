package ffmpeg

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAudioProbeArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-v", "error", "-select_streams", "a", "-show_entries", "stream=codec_type", "-of", "csv=p=0", "/a/take.wav"},
		audioProbeArgs("/a/take.wav"))
}

func TestAudioProbe_HasAudioStream(t *testing.T) {
	t.Run("audio stream reported", func(t *testing.T) {
		script := writeScript(t, `[ "$9" = "/media/dialogue_tk02.wav" ] || exit 2
echo audio`)
		p := NewAudioProbe(script, time.Second)
		assert.True(t, p.HasAudioStream(context.Background(), "/media/dialogue_tk02.wav"))
	})

	t.Run("several audio streams", func(t *testing.T) {
		script := writeScript(t, `printf 'audio\naudio\n'`)
		assert.True(t, NewAudioProbe(script, time.Second).HasAudioStream(context.Background(), "x.mov"))
	})

	t.Run("silent video has empty output", func(t *testing.T) {
		script := writeScript(t, `exit 0`)
		assert.False(t, NewAudioProbe(script, time.Second).HasAudioStream(context.Background(), "x.mov"))
	})

	t.Run("probe error", func(t *testing.T) {
		script := writeScript(t, `echo "x.mov: Invalid data found when processing input" 1>&2; exit 1`)
		assert.False(t, NewAudioProbe(script, time.Second).HasAudioStream(context.Background(), "x.mov"))
	})

	t.Run("missing binary", func(t *testing.T) {
		p := NewAudioProbe(filepath.Join(t.TempDir(), "ffprobe"), time.Second)
		assert.False(t, p.HasAudioStream(context.Background(), "x.wav"))
	})

	t.Run("timeout", func(t *testing.T) {
		script := writeScript(t, `sleep 5; echo audio`)
		assert.False(t, NewAudioProbe(script, 50*time.Millisecond).HasAudioStream(context.Background(), "x.wav"))
	})
}
