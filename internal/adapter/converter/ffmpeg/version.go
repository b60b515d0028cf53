package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// toolVersion returns the first line of `<binary> -version`.
func toolVersion(ctx context.Context, binary string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, binary, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("run %s -version: %w", binary, err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New(binary + " printed no version")
	}
	return line, nil
}

func (c *Capabilities) Version(ctx context.Context) (string, error) {
	return toolVersion(ctx, c.binary, c.timeout)
}

func (p *AudioProbe) Version(ctx context.Context) (string, error) {
	return toolVersion(ctx, p.binary, p.timeout)
}
