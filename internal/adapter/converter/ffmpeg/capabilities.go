package ffmpeg

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/port"
)

// Capabilities queries `ffmpeg -hide_banner -encoders`.
type Capabilities struct {
	binary  string
	timeout time.Duration
}

func NewCapabilities(binary string, timeout time.Duration) *Capabilities {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Capabilities{binary: binary, timeout: timeout}
}

func (c *Capabilities) ListEncoders(ctx context.Context) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, c.binary, "-hide_banner", "-encoders").Output()
	return string(out), err
}

// HasEncoder reports whether the encoder list mentions codec. Any failure to
// run the query counts as "not available".
func (c *Capabilities) HasEncoder(ctx context.Context, codec string) bool {
	out, err := c.ListEncoders(ctx)
	if err != nil {
		logger.Debugf("encoder probe for %s failed: %v", codec, err)
		return false
	}
	return strings.Contains(out, codec)
}

var _ port.EncoderCapabilities = (*Capabilities)(nil)
