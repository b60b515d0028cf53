package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/service"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiDim   = "\033[2m"
	ansiReset = "\033[0m"
)

// Console prints batch progress for an operator.
type Console struct {
	out     io.Writer
	verbose bool
	color   bool
	mu      sync.Mutex
}

// NewConsole writes to out. Encoder output lines are only printed when
// verbose is set.
func NewConsole(out io.Writer, verbose bool) *Console {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return &Console{out: out, verbose: verbose, color: color}
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiReset
}

// HandleEvent is registered on the event bus.
func (c *Console) HandleEvent(e service.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Type {
	case service.EventOutput:
		if c.verbose {
			_, _ = fmt.Fprintln(c.out, c.paint(ansiDim, "    "+e.Message))
		}
	case service.EventStatus:
		switch domain.JobStatus(e.Status) {
		case domain.JobStatusRunning:
			_, _ = fmt.Fprintln(c.out, e.Message)
		case domain.JobStatusSucceeded:
			_, _ = fmt.Fprintln(c.out, c.paint(ansiGreen, "✓ "+e.Message))
		case domain.JobStatusFailed:
			_, _ = fmt.Fprintln(c.out, c.paint(ansiRed, "✗ "+e.Message))
		}
	case service.EventBatch:
		_, _ = fmt.Fprintln(c.out, e.Message)
	}
}

// PrintQueue lists the jobs with the filename each would produce.
func PrintQueue(w io.Writer, jobs []domain.Job, settings domain.BatchSettings) {
	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(w, "Queue is empty.")
		return
	}
	_, _ = fmt.Fprintf(w, "%-3s %-28s %-6s %-28s %s\n", "#", "IMG SQ Folder", "Take", "Audio Source", "Filename Preview")
	for i, j := range jobs {
		audio := "No audio"
		if j.HasAudio() {
			audio = filepath.Base(j.AudioSource)
		}
		preview := domain.ComposeOutputName(j.FolderName(), j.Take, settings.TaskCode, settings.Preset.Extension())
		_, _ = fmt.Fprintf(w, "%-3d %-28s %-6s %-28s %s\n", i+1, j.FolderName(), j.Take, audio, preview)
	}
}

// PrintPlan writes one shell-ready command line per job.
func PrintPlan(w io.Writer, binary string, planned []service.PlannedJob) {
	for _, p := range planned {
		if p.Err != nil {
			_, _ = fmt.Fprintf(w, "# %s: %v\n", p.Job.FolderName(), p.Err)
			continue
		}
		_, _ = fmt.Fprintf(w, "# %s -> %s (%s)\n", p.Job.FolderName(), filepath.Base(p.OutputPath), p.Plan.Codec)
		_, _ = fmt.Fprintln(w, ShellJoin(append([]string{binary}, p.Args...)))
	}
}

// PrintSummary writes the per-job outcome of a run.
func PrintSummary(w io.Writer, s domain.BatchSummary) {
	_, _ = fmt.Fprintf(w, "\nBatch %s in %s: %d succeeded, %d failed, %d not started\n",
		s.State,
		s.Elapsed.Round(time.Millisecond),
		s.Count(domain.JobStatusSucceeded),
		s.Count(domain.JobStatusFailed),
		s.Count(domain.JobStatusPending))

	for _, j := range s.Jobs {
		switch j.Status {
		case domain.JobStatusSucceeded:
			size := "?"
			if n, ok := fileSize(j.OutputPath); ok {
				size = humanize.Bytes(n)
			}
			_, _ = fmt.Fprintf(w, "  ✓ %-28s %s (%s, %s)\n", j.FolderName(), filepath.Base(j.OutputPath), size, j.Duration().Round(time.Millisecond))
		case domain.JobStatusFailed:
			_, _ = fmt.Fprintf(w, "  ✗ %-28s %s\n", j.FolderName(), lastLine(j.LastError))
		default:
			_, _ = fmt.Fprintf(w, "  - %-28s %s\n", j.FolderName(), j.Status)
		}
	}
	if s.Cancelled {
		_, _ = fmt.Fprintln(w, "Run was cancelled before all jobs started.")
	}
}

// ShellJoin quotes args for a POSIX shell.
func ShellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:=%+,@", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fileSize(path string) (uint64, bool) {
	if path == "" {
		return 0, false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return uint64(info.Size()), true
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
