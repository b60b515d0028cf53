package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type BatchState string

const (
	BatchStateIdle      BatchState = "idle"
	BatchStateRunning   BatchState = "running"
	BatchStateCompleted BatchState = "completed"
	BatchStateAborted   BatchState = "aborted"
)

// BatchSettings are shared read-only by every job of a run.
type BatchSettings struct {
	OutputDir string
	FPS       string
	HWAccel   HWAccel
	Preset    Preset
	TaskCode  string
}

var (
	reRationalFPS = regexp.MustCompile(`^\d+/\d+$`)
	reDecimalFPS  = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
)

// ValidateFPS accepts a positive integer, decimal or num/den rational.
func ValidateFPS(fps string) error {
	fps = strings.TrimSpace(fps)
	if reRationalFPS.MatchString(fps) {
		parts := strings.SplitN(fps, "/", 2)
		num, _ := strconv.Atoi(parts[0])
		den, _ := strconv.Atoi(parts[1])
		if num > 0 && den > 0 {
			return nil
		}
		return fmt.Errorf("invalid frame rate %q", fps)
	}
	if !reDecimalFPS.MatchString(fps) {
		return fmt.Errorf("invalid frame rate %q", fps)
	}
	if v, err := strconv.ParseFloat(fps, 64); err != nil || v <= 0 {
		return fmt.Errorf("invalid frame rate %q", fps)
	}
	return nil
}

// BatchSummary reports the outcome of one run.
type BatchSummary struct {
	State     BatchState
	Settings  BatchSettings
	Jobs      []Job
	FailedJob *Job
	Cancelled bool
	StartedAt time.Time
	Elapsed   time.Duration
}

func (s BatchSummary) Count(status JobStatus) int {
	n := 0
	for _, j := range s.Jobs {
		if j.Status == status {
			n++
		}
	}
	return n
}
