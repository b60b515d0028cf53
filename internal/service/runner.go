package service

import (
	"context"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/port"
)

// failureTailLines is how much encoder output a failed job keeps.
const failureTailLines = 20

// Result is the outcome of one encoder run. Err is nil on success and
// otherwise wraps domain.ErrEmptySequence, or is a *domain.EncodeProcessError
// or *domain.SpawnError.
type Result struct {
	OutputPath string
	Args       []string
	Err        error
}

func (r Result) Succeeded() bool {
	return r.Err == nil
}

// JobRunner encodes a single job. It never runs jobs concurrently.
type JobRunner struct {
	detector port.SequenceDetector
	process  port.ProcessRunner
	binary   string
}

func NewJobRunner(detector port.SequenceDetector, process port.ProcessRunner, binary string) *JobRunner {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &JobRunner{
		detector: detector,
		process:  process,
		binary:   binary,
	}
}

func (r *JobRunner) Binary() string {
	return r.binary
}

// BuildArgs returns the encoder arguments for seq written to outputPath.
func BuildArgs(seq domain.Sequence, audioSource, fps string, plan domain.EncoderPlan, outputPath string) []string {
	args := []string{"-framerate", fps, "-i", seq.InputPattern()}
	if audioSource != "" {
		args = append(args, "-i", audioSource, "-map", "0:v:0", "-map", "1:a:0?")
	}
	args = append(args, "-c:v", plan.Codec)
	args = append(args, plan.CodecArgs...)
	args = append(args, "-pix_fmt", "yuv420p", "-y", outputPath)
	return args
}

// Command detects the job's sequence and returns the encoder arguments and
// output path without running anything.
func (r *JobRunner) Command(job *domain.Job, settings domain.BatchSettings, plan domain.EncoderPlan) ([]string, string, error) {
	outputPath := domain.OutputPath(settings.OutputDir, job.SourceFolder, job.Take, settings.TaskCode, plan.Extension)

	seq, err := r.detector.Detect(job.SourceFolder)
	if err != nil {
		return nil, outputPath, err
	}
	return BuildArgs(seq, job.AudioSource, settings.FPS, plan, outputPath), outputPath, nil
}

// Run encodes job and blocks until the encoder exits. Every output line is
// passed to onLine, which may be nil.
func (r *JobRunner) Run(ctx context.Context, job *domain.Job, settings domain.BatchSettings, plan domain.EncoderPlan, onLine func(string)) Result {
	args, outputPath, err := r.Command(job, settings, plan)
	if err != nil {
		return Result{OutputPath: outputPath, Err: err}
	}

	logger.Debugf("running %s %v", r.binary, args)

	tail := newTailBuffer(failureTailLines)
	exitCode, err := r.process.Run(ctx, r.binary, args, func(line string) {
		tail.Add(line)
		if onLine != nil {
			onLine(line)
		}
	})
	if err != nil {
		return Result{OutputPath: outputPath, Args: args, Err: &domain.SpawnError{Err: err}}
	}
	if exitCode != 0 {
		return Result{
			OutputPath: outputPath,
			Args:       args,
			Err:        &domain.EncodeProcessError{ExitCode: exitCode, Tail: tail.Lines()},
		}
	}
	return Result{OutputPath: outputPath, Args: args}
}

// tailBuffer keeps the last n lines it was given.
type tailBuffer struct {
	lines []string
	next  int
	full  bool
}

func newTailBuffer(n int) *tailBuffer {
	return &tailBuffer{lines: make([]string, n)}
}

func (b *tailBuffer) Add(line string) {
	b.lines[b.next] = line
	b.next = (b.next + 1) % len(b.lines)
	if b.next == 0 {
		b.full = true
	}
}

func (b *tailBuffer) Lines() []string {
	if !b.full {
		return append([]string(nil), b.lines[:b.next]...)
	}
	out := make([]string, 0, len(b.lines))
	out = append(out, b.lines[b.next:]...)
	return append(out, b.lines[:b.next]...)
}
