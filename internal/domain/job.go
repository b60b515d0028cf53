package domain

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

type Job struct {
	ID           string
	SourceFolder string
	AudioSource  string
	Take         Take
	Status       JobStatus
	LastError    string
	OutputPath   string
	CreatedAt    time.Time
	StartedAt    time.Time
	CompletedAt  time.Time
}

func NewJob(folder string) *Job {
	return &Job{
		ID:           uuid.NewString(),
		SourceFolder: filepath.Clean(folder),
		Take:         DefaultTake,
		Status:       JobStatusPending,
		CreatedAt:    time.Now(),
	}
}

func (j *Job) FolderName() string {
	return FolderBase(j.SourceFolder)
}

func (j *Job) IsPending() bool {
	return j.Status == JobStatusPending
}

func (j *Job) HasAudio() bool {
	return j.AudioSource != ""
}

func (j *Job) MarkAsRunning(outputPath string) {
	j.Status = JobStatusRunning
	j.OutputPath = outputPath
	j.StartedAt = time.Now()
}

func (j *Job) MarkAsSucceeded() {
	j.Status = JobStatusSucceeded
	j.LastError = ""
	j.CompletedAt = time.Now()
}

func (j *Job) MarkAsFailed(msg string) {
	j.Status = JobStatusFailed
	j.LastError = msg
	j.CompletedAt = time.Now()
}

// Duration is the wall time of a finished job.
func (j *Job) Duration() time.Duration {
	if j.StartedAt.IsZero() || j.CompletedAt.IsZero() {
		return 0
	}
	return j.CompletedAt.Sub(j.StartedAt)
}
