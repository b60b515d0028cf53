package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("job not found")
	ErrConfiguration    = errors.New("configuration error")
	ErrEmptySequence    = errors.New("no image files found")
	ErrDuplicateFolder  = errors.New("folder already queued")
	ErrNotADirectory    = errors.New("not a directory")
	ErrJobNotPending    = errors.New("job is no longer pending")
	ErrUnsupportedAudio = errors.New("unsupported audio/video file")
	ErrBatchRunning     = errors.New("batch is running")
)

// EncodeProcessError is returned when the encoder exits non-zero. Tail holds
// the last lines of its combined output.
type EncodeProcessError struct {
	ExitCode int
	Tail     []string
}

func (e *EncodeProcessError) Error() string {
	if len(e.Tail) == 0 {
		return fmt.Sprintf("encoder exited with status %d", e.ExitCode)
	}
	return strings.Join(e.Tail, "\n")
}

// SpawnError wraps a failure to start the encoder or read its output.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
