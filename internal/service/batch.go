package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/port"
)

// Orchestrator owns the job queue and the batch settings and runs the jobs
// one at a time in insertion order.
type Orchestrator struct {
	queue   port.JobQueue
	runner  *JobRunner
	presets *PresetResolver
	prober  port.AudioProber
	events  EventPublisher

	mu       sync.Mutex
	settings domain.BatchSettings
	state    domain.BatchState
}

func NewOrchestrator(
	queue port.JobQueue,
	runner *JobRunner,
	presets *PresetResolver,
	prober port.AudioProber,
	events EventPublisher,
	settings domain.BatchSettings,
) *Orchestrator {
	return &Orchestrator{
		queue:    queue,
		runner:   runner,
		presets:  presets,
		prober:   prober,
		events:   events,
		settings: settings,
		state:    domain.BatchStateIdle,
	}
}

// PlannedJob is what a run would execute for one job.
type PlannedJob struct {
	Job        domain.Job
	Plan       domain.EncoderPlan
	OutputPath string
	Args       []string
	Err        error
}

func (o *Orchestrator) State() domain.BatchState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Settings() domain.BatchSettings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.settings
}

func (o *Orchestrator) UpdateSettings(settings domain.BatchSettings) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == domain.BatchStateRunning {
		return domain.ErrBatchRunning
	}
	o.settings = settings
	return nil
}

// AddFolder queues an image-sequence folder as a new pending job.
func (o *Orchestrator) AddFolder(folder string) (*domain.Job, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == domain.BatchStateRunning {
		return nil, domain.ErrBatchRunning
	}

	abs, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", folder, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, abs)
	}

	if _, err := o.queue.FindByFolder(filepath.Clean(abs)); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateFolder, abs)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	job := domain.NewJob(abs)
	if err := o.queue.Enqueue(job); err != nil {
		return nil, err
	}
	logger.Infof("queued %s", logger.SanitizeForLog(job.SourceFolder))
	return job, nil
}

// AttachAudio sets the audio source of a pending job and derives its take
// from the file name. fallbackTake is used when the name carries no take.
// A file without an audio stream is accepted but leaves the job silent.
func (o *Orchestrator) AttachAudio(ctx context.Context, id, path, fallbackTake string) (*domain.Job, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	job, err := o.pendingJob(id)
	if err != nil {
		return nil, err
	}
	if !domain.IsAudioSource(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedAudio, filepath.Base(path))
	}

	if o.prober.HasAudioStream(ctx, path) {
		job.AudioSource = path
	} else {
		logger.Warnf("%s has no audio stream, %s will be silent",
			logger.SanitizeForLog(filepath.Base(path)), job.FolderName())
		job.AudioSource = ""
	}

	if take, ok := domain.TakeFromFilename(filepath.Base(path)); ok {
		job.Take = take
	} else {
		job.Take = domain.NormalizeTake(fallbackTake)
	}

	if err := o.queue.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (o *Orchestrator) DetachAudio(id string) (*domain.Job, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	job, err := o.pendingJob(id)
	if err != nil {
		return nil, err
	}
	job.AudioSource = ""
	if err := o.queue.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// SetTake normalizes raw and stores it as the job's take.
func (o *Orchestrator) SetTake(id, raw string) (*domain.Job, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	job, err := o.pendingJob(id)
	if err != nil {
		return nil, err
	}
	job.Take = domain.NormalizeTake(raw)
	if err := o.queue.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (o *Orchestrator) Remove(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.pendingJob(id); err != nil {
		return err
	}
	return o.queue.Remove(id)
}

func (o *Orchestrator) Clear() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == domain.BatchStateRunning {
		return domain.ErrBatchRunning
	}
	if err := o.queue.Clear(); err != nil {
		return err
	}
	o.state = domain.BatchStateIdle
	return nil
}

// Rebuild replaces every job with a fresh pending copy so a finished or
// aborted batch can be run again.
func (o *Orchestrator) Rebuild() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == domain.BatchStateRunning {
		return domain.ErrBatchRunning
	}
	jobs, err := o.queue.List()
	if err != nil {
		return err
	}
	if err := o.queue.Clear(); err != nil {
		return err
	}
	for _, old := range jobs {
		job := domain.NewJob(old.SourceFolder)
		job.AudioSource = old.AudioSource
		job.Take = old.Take
		if err := o.queue.Enqueue(job); err != nil {
			return err
		}
	}
	o.state = domain.BatchStateIdle
	return nil
}

// Jobs returns snapshots of the queued jobs in order.
func (o *Orchestrator) Jobs() ([]domain.Job, error) {
	jobs, err := o.queue.List()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Job, len(jobs))
	for i, j := range jobs {
		out[i] = *j
	}
	return out, nil
}

// Preview is the output filename the job would get with the current
// settings. It does not probe the encoder.
func (o *Orchestrator) Preview(id string) (string, error) {
	job, err := o.queue.Get(id)
	if err != nil {
		return "", err
	}
	s := o.Settings()
	return domain.ComposeOutputName(job.FolderName(), job.Take, s.TaskCode, s.Preset.Extension()), nil
}

// Plan validates the batch and returns the encoder command of every job
// without running any of them.
func (o *Orchestrator) Plan(ctx context.Context) ([]PlannedJob, error) {
	settings := o.Settings()
	jobs, err := o.validate(settings)
	if err != nil {
		return nil, err
	}

	o.presets.ResetCache()
	planned := make([]PlannedJob, 0, len(jobs))
	for _, job := range jobs {
		plan := o.presets.Resolve(ctx, settings.Preset, settings.HWAccel)
		args, out, err := o.runner.Command(job, settings, plan)
		planned = append(planned, PlannedJob{
			Job:        *job,
			Plan:       plan,
			OutputPath: out,
			Args:       args,
			Err:        err,
		})
	}
	return planned, nil
}

// Run executes every queued job in order and stops at the first failure.
// Configuration problems are reported as an error wrapping
// domain.ErrConfiguration before any job is touched. Job failures and
// cancellation are reported in the summary.
func (o *Orchestrator) Run(ctx context.Context) (domain.BatchSummary, error) {
	o.mu.Lock()
	if o.state == domain.BatchStateRunning {
		o.mu.Unlock()
		return domain.BatchSummary{}, domain.ErrBatchRunning
	}
	settings := o.settings
	jobs, err := o.validate(settings)
	if err != nil {
		o.mu.Unlock()
		return domain.BatchSummary{}, err
	}
	o.state = domain.BatchStateRunning
	o.mu.Unlock()

	summary := domain.BatchSummary{Settings: settings, StartedAt: time.Now()}
	o.publishBatch(domain.BatchStateRunning, fmt.Sprintf("Rendering %d folder(s)", len(jobs)))
	logger.Infof("batch started: %d job(s), preset=%s hwaccel=%s fps=%s", len(jobs), settings.Preset, settings.HWAccel, settings.FPS)

	o.presets.ResetCache()
	runErr := o.runJobs(ctx, jobs, settings, &summary)

	summary.State = domain.BatchStateCompleted
	if runErr != nil || summary.FailedJob != nil || summary.Cancelled {
		summary.State = domain.BatchStateAborted
	}
	summary.Elapsed = time.Since(summary.StartedAt)
	if final, err := o.Jobs(); err == nil {
		summary.Jobs = final
	} else if runErr == nil {
		runErr = err
	}

	o.mu.Lock()
	o.state = summary.State
	o.mu.Unlock()

	switch {
	case summary.FailedJob != nil:
		o.publishBatch(summary.State, "Error rendering: "+summary.FailedJob.FolderName())
	case summary.Cancelled:
		o.publishBatch(summary.State, "Rendering cancelled")
	case runErr != nil:
		o.publishBatch(summary.State, "Rendering stopped: "+runErr.Error())
	default:
		o.publishBatch(summary.State, "All renders finished.")
	}
	logger.Infof("batch %s in %s", summary.State, summary.Elapsed.Round(time.Millisecond))

	return summary, runErr
}

func (o *Orchestrator) runJobs(ctx context.Context, jobs []*domain.Job, settings domain.BatchSettings, summary *domain.BatchSummary) error {
	for _, job := range jobs {
		if ctx.Err() != nil {
			logger.Warnf("batch cancelled before %s", job.FolderName())
			summary.Cancelled = true
			return nil
		}

		plan := o.presets.Resolve(ctx, settings.Preset, settings.HWAccel)
		if ctx.Err() != nil {
			logger.Warnf("batch cancelled before %s", job.FolderName())
			summary.Cancelled = true
			return nil
		}
		job.MarkAsRunning(domain.OutputPath(settings.OutputDir, job.SourceFolder, job.Take, settings.TaskCode, plan.Extension))
		if err := o.queue.Update(job); err != nil {
			return fmt.Errorf("update job %s: %w", job.ID, err)
		}
		o.publishStatus(job, "Rendering: "+job.SourceFolder)

		result := o.runner.Run(ctx, job, settings, plan, func(line string) {
			o.events.Publish(job.ID, Event{Type: EventOutput, Status: string(job.Status), Message: line})
		})

		if result.Succeeded() {
			job.MarkAsSucceeded()
			logger.Infof("rendered %s -> %s", job.FolderName(), logger.SanitizeForLog(job.OutputPath))
		} else {
			job.MarkAsFailed(result.Err.Error())
			logger.Errorf("failed rendering %s: %s", job.FolderName(), logger.SanitizeForLog(result.Err.Error()))
		}
		if err := o.queue.Update(job); err != nil {
			return fmt.Errorf("update job %s: %w", job.ID, err)
		}

		if !result.Succeeded() {
			failed := *job
			summary.FailedJob = &failed
			o.publishStatus(job, fmt.Sprintf("Failed rendering: %s\n\nError:\n%s", job.FolderName(), job.LastError))
			return nil
		}
		o.publishStatus(job, job.FolderName())
	}
	return nil
}

// validate must see a pending, non-empty queue, an existing output
// directory and a usable frame rate.
func (o *Orchestrator) validate(settings domain.BatchSettings) ([]*domain.Job, error) {
	if settings.OutputDir == "" {
		return nil, fmt.Errorf("%w: no output folder", domain.ErrConfiguration)
	}
	info, err := os.Stat(settings.OutputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: invalid output folder %s", domain.ErrConfiguration, settings.OutputDir)
	}

	jobs, err := o.queue.List()
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no input folders", domain.ErrConfiguration)
	}
	for _, job := range jobs {
		if !job.IsPending() {
			return nil, fmt.Errorf("%w: %s is %s, rebuild the queue to run it again",
				domain.ErrConfiguration, job.FolderName(), job.Status)
		}
	}

	if err := domain.ValidateFPS(settings.FPS); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return jobs, nil
}

// pendingJob must be called with o.mu held.
func (o *Orchestrator) pendingJob(id string) (*domain.Job, error) {
	if o.state == domain.BatchStateRunning {
		return nil, domain.ErrBatchRunning
	}
	job, err := o.queue.Get(id)
	if err != nil {
		return nil, err
	}
	if !job.IsPending() {
		return nil, fmt.Errorf("%w: %s", domain.ErrJobNotPending, job.FolderName())
	}
	return job, nil
}

func (o *Orchestrator) publishStatus(job *domain.Job, message string) {
	o.events.Publish(job.ID, Event{Type: EventStatus, Status: string(job.Status), Message: message})
}

func (o *Orchestrator) publishBatch(state domain.BatchState, message string) {
	o.events.Publish("", Event{Type: EventBatch, Status: string(state), Message: message})
}
