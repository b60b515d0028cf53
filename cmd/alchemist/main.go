package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sadalchemist/alchemist/config"
	"github.com/sadalchemist/alchemist/internal/adapter/converter/ffmpeg"
	"github.com/sadalchemist/alchemist/internal/adapter/report"
	"github.com/sadalchemist/alchemist/internal/adapter/sequence"
	sqlitestore "github.com/sadalchemist/alchemist/internal/adapter/storage/sqlite"
	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/service"
	"github.com/spf13/pflag"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "alchemist: %v\n", err)
		return exitConfig
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "alchemist: invalid log level: %v\n", err)
		return exitConfig
	}

	settings, err := cfg.BatchSettings()
	if err != nil {
		logger.Errorf("invalid settings: %v", err)
		return exitConfig
	}

	// Cancelling only stops the batch before the next job; a running encoder
	// is left to finish.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	caps := ffmpeg.NewCapabilities(cfg.FFmpeg, cfg.ProbeTimeout)
	prober := ffmpeg.NewAudioProbe(cfg.FFprobe, cfg.ProbeTimeout)

	if cfg.Check {
		return runCheck(ctx, caps, prober)
	}

	store, err := sqlitestore.NewStore()
	if err != nil {
		logger.Errorf("failed to create job queue: %v", err)
		return exitFailed
	}
	defer func() { _ = store.Close() }()

	eventBus := service.NewEventBus()
	console := report.NewConsole(os.Stdout, cfg.Verbose || logger.IsDebug())
	eventBus.Handle(console.HandleEvent)

	runner := service.NewJobRunner(sequence.NewDetector(), ffmpeg.NewProcess(), cfg.FFmpeg)
	orch := service.NewOrchestrator(
		sqlitestore.NewJobQueue(store),
		runner,
		service.NewPresetResolver(caps, cfg.ProbeOnce),
		prober,
		eventBus,
		settings,
	)

	queueFolders(ctx, orch, cfg)

	jobs, err := orch.Jobs()
	if err != nil {
		logger.Errorf("failed to list jobs: %v", err)
		return exitFailed
	}
	report.PrintQueue(os.Stdout, jobs, settings)

	if cfg.DryRun {
		planned, err := orch.Plan(ctx)
		if err != nil {
			logger.Errorf("%v", err)
			return exitConfig
		}
		report.PrintPlan(os.Stdout, runner.Binary(), planned)
		return exitOK
	}

	summary, err := orch.Run(ctx)
	if errors.Is(err, domain.ErrConfiguration) {
		logger.Errorf("%v", err)
		return exitConfig
	}
	if err != nil {
		logger.Errorf("batch stopped: %v", err)
	}
	report.PrintSummary(os.Stdout, summary)

	if cfg.Report != "" {
		if err := report.WriteHTML(ctx, cfg.Report, summary); err != nil {
			logger.Errorf("failed to write report: %v", err)
		} else {
			logger.Infof("report written to %s", cfg.Report)
		}
	}

	if err != nil || summary.State != domain.BatchStateCompleted {
		return exitFailed
	}
	return exitOK
}

// queueFolders enqueues the configured folders and applies --audio and
// --take. Rejected folders are logged and skipped.
func queueFolders(ctx context.Context, orch *service.Orchestrator, cfg *config.Config) {
	audio := absKeys(cfg.Audio)
	takes := absKeys(cfg.Takes)

	for _, folder := range cfg.Folders {
		job, err := orch.AddFolder(folder)
		if err != nil {
			logger.Warnf("skipping %s: %v", logger.SanitizeForLog(folder), err)
			continue
		}

		take := takes[job.SourceFolder]
		if file, ok := audio[job.SourceFolder]; ok {
			if _, err := orch.AttachAudio(ctx, job.ID, file, take); err != nil {
				logger.Warnf("audio for %s: %v", job.FolderName(), err)
			}
			continue
		}
		if take != "" {
			if _, err := orch.SetTake(job.ID, take); err != nil {
				logger.Warnf("take for %s: %v", job.FolderName(), err)
			}
		}
	}
}

func absKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		abs, err := filepath.Abs(k)
		if err != nil {
			abs = filepath.Clean(k)
		}
		out[abs] = v
	}
	return out
}

func runCheck(ctx context.Context, caps *ffmpeg.Capabilities, prober *ffmpeg.AudioProbe) int {
	ok := true

	if v, err := caps.Version(ctx); err != nil {
		fmt.Printf("✗ encoder: %v\n", err)
		ok = false
	} else {
		fmt.Printf("✓ encoder: %s\n", v)
	}

	if v, err := prober.Version(ctx); err != nil {
		fmt.Printf("✗ prober: %v\n", err)
		ok = false
	} else {
		fmt.Printf("✓ prober: %s\n", v)
	}

	for _, codec := range []string{domain.CodecH264CPU, domain.CodecH264GPU, domain.CodecProRes} {
		if caps.HasEncoder(ctx, codec) {
			fmt.Printf("✓ %s available\n", codec)
		} else {
			fmt.Printf("- %s not available\n", codec)
		}
	}

	if !ok {
		return exitFailed
	}
	return exitOK
}
