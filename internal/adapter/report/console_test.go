package report

import (
	"bytes"
	"testing"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestConsole_HandleEvent(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		event   service.Event
		want    string
	}{
		{
			name:  "running",
			event: service.Event{Type: service.EventStatus, Status: "running", Message: "Rendering: /r/ShotA"},
			want:  "Rendering: /r/ShotA\n",
		},
		{
			name:  "succeeded",
			event: service.Event{Type: service.EventStatus, Status: "succeeded", Message: "ShotA"},
			want:  "✓ ShotA\n",
		},
		{
			name:  "failed",
			event: service.Event{Type: service.EventStatus, Status: "failed", Message: "Failed rendering: ShotB"},
			want:  "✗ Failed rendering: ShotB\n",
		},
		{
			name:  "output hidden",
			event: service.Event{Type: service.EventOutput, Message: "frame=1"},
			want:  "",
		},
		{
			name:    "output shown when verbose",
			verbose: true,
			event:   service.Event{Type: service.EventOutput, Message: "frame=1"},
			want:    "    frame=1\n",
		},
		{
			name:  "batch",
			event: service.Event{Type: service.EventBatch, Status: "completed", Message: "All renders finished."},
			want:  "All renders finished.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, tt.verbose).HandleEvent(tt.event)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintQueue(t *testing.T) {
	jobs := []domain.Job{
		{SourceFolder: "/r/ShotA", Take: 2, AudioSource: "/a/ShotA_tk01.wav", Status: domain.JobStatusPending},
		{SourceFolder: "/r/ShotB", Take: 1, Status: domain.JobStatusPending},
	}
	settings := domain.BatchSettings{Preset: domain.PresetProResProxy}

	var buf bytes.Buffer
	PrintQueue(&buf, jobs, settings)

	out := buf.String()
	assert.Contains(t, out, "Filename Preview")
	assert.Contains(t, out, "ShotA_tk02_TASK.mov")
	assert.Contains(t, out, "ShotA_tk01.wav")
	assert.Contains(t, out, "No audio")
	assert.Contains(t, out, "ShotB_tk01_TASK.mov")

	buf.Reset()
	PrintQueue(&buf, nil, settings)
	assert.Equal(t, "Queue is empty.\n", buf.String())
}

func TestPrintPlan(t *testing.T) {
	planned := []service.PlannedJob{
		{
			Job:        domain.Job{SourceFolder: "/r/Shot A"},
			Plan:       domain.EncoderPlan{Codec: "libx264"},
			OutputPath: "/out/Shot A_tk01_TASK.mp4",
			Args:       []string{"-framerate", "24", "-i", "/r/Shot A/f_%04d.png", "-y", "/out/Shot A_tk01_TASK.mp4"},
		},
		{
			Job: domain.Job{SourceFolder: "/r/Empty"},
			Err: domain.ErrEmptySequence,
		},
	}

	var buf bytes.Buffer
	PrintPlan(&buf, "ffmpeg", planned)

	assert.Equal(t,
		"# Shot A -> Shot A_tk01_TASK.mp4 (libx264)\n"+
			"ffmpeg -framerate 24 -i '/r/Shot A/f_%04d.png' -y '/out/Shot A_tk01_TASK.mp4'\n"+
			"# Empty: no image files found\n",
		buf.String())
}

func TestPrintSummary(t *testing.T) {
	s := sampleSummary(t)

	var buf bytes.Buffer
	PrintSummary(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "Batch aborted in 3s: 1 succeeded, 1 failed, 1 not started")
	assert.Contains(t, out, "✓ ShotA")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "Conversion failed!")
	assert.Contains(t, out, "- ShotC")
}

func TestShellJoin(t *testing.T) {
	assert.Equal(t, "ffmpeg -i in.png", ShellJoin([]string{"ffmpeg", "-i", "in.png"}))
	assert.Equal(t, `'it'\''s' '' '1:a:0?'`, ShellJoin([]string{"it's", "", "1:a:0?"}))
}
