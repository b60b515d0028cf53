package port

import (
	"context"

	"github.com/sadalchemist/alchemist/internal/domain"
)

// ProcessRunner starts an external program and blocks until it exits,
// handing every line of its merged stdout/stderr to onLine as it arrives.
// A non-nil error means the process could not be started or read; a
// non-zero exit code is not an error.
type ProcessRunner interface {
	Run(ctx context.Context, name string, args []string, onLine func(string)) (exitCode int, err error)
}

// EncoderCapabilities answers whether the encoder binary lists a codec.
// Probe failures report false.
type EncoderCapabilities interface {
	HasEncoder(ctx context.Context, codec string) bool
}

// AudioProber reports whether a media file carries an audio stream.
// Probe failures report false.
type AudioProber interface {
	HasAudioStream(ctx context.Context, path string) bool
}

// SequenceDetector locates the numbered image sequence inside a folder.
type SequenceDetector interface {
	Detect(dir string) (domain.Sequence, error)
}
