package ffmpeg

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/port"
)

// AudioProbe asks ffprobe which audio streams a file carries.
type AudioProbe struct {
	binary  string
	timeout time.Duration
}

func NewAudioProbe(binary string, timeout time.Duration) *AudioProbe {
	if binary == "" {
		binary = "ffprobe"
	}
	return &AudioProbe{binary: binary, timeout: timeout}
}

func audioProbeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		path,
	}
}

// HasAudioStream is best effort: a missing binary, a timeout or a non-zero
// exit all report false.
func (p *AudioProbe) HasAudioStream(ctx context.Context, path string) bool {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, p.binary, audioProbeArgs(path)...).Output()
	if err != nil {
		logger.Debugf("audio probe failed for %s: %v", logger.SanitizeForLog(path), err)
		return false
	}
	return strings.Contains(string(out), "audio")
}

var _ port.AudioProber = (*AudioProbe)(nil)
