package report

//go:generate templ generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sadalchemist/alchemist/internal/domain"
)

// WriteHTML renders the report for s into path.
func WriteHTML(ctx context.Context, path string, s domain.BatchSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Report(s).Render(ctx, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	return f.Close()
}

func taskOrDefault(task string) string {
	if strings.TrimSpace(task) == "" {
		return domain.DefaultTaskCode
	}
	return task
}

func elapsed(s domain.BatchSummary) string {
	return s.Elapsed.Round(time.Millisecond).String()
}

func jobAudio(j domain.Job) string {
	if !j.HasAudio() {
		return "-"
	}
	return filepath.Base(j.AudioSource)
}

func jobOutput(j domain.Job) string {
	if j.OutputPath == "" {
		return "-"
	}
	return filepath.Base(j.OutputPath)
}

// jobSize is only known for outputs that were written.
func jobSize(j domain.Job) string {
	if j.Status != domain.JobStatusSucceeded {
		return "-"
	}
	n, ok := fileSize(j.OutputPath)
	if !ok {
		return "-"
	}
	return humanize.Bytes(n)
}

func jobTook(j domain.Job) string {
	if j.Status != domain.JobStatusSucceeded {
		return "-"
	}
	return j.Duration().Round(time.Millisecond).String()
}
