package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/port"
)

const jobColumns = `id, source_folder, audio_source, take, status, last_error, output_path, created_at, started_at, completed_at`

// JobQueue keeps jobs in insertion order.
type JobQueue struct {
	db *sql.DB
}

func NewJobQueue(store *Store) *JobQueue {
	return &JobQueue{db: store.db}
}

func (q *JobQueue) Enqueue(job *domain.Job) error {
	ctx := context.Background()
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID,
		job.SourceFolder,
		job.AudioSource,
		int64(job.Take),
		string(job.Status),
		job.LastError,
		job.OutputPath,
		toUnix(job.CreatedAt),
		toUnix(job.StartedAt),
		toUnix(job.CompletedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateFolder, job.SourceFolder)
		}
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (q *JobQueue) Get(id string) (*domain.Job, error) {
	ctx := context.Background()
	row := q.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	return scanJob(row)
}

func (q *JobQueue) FindByFolder(folder string) (*domain.Job, error) {
	ctx := context.Background()
	row := q.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE source_folder = ?`, folder)
	return scanJob(row)
}

func (q *JobQueue) List() ([]*domain.Job, error) {
	ctx := context.Background()
	rows, err := q.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []*domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (q *JobQueue) Update(job *domain.Job) error {
	ctx := context.Background()
	res, err := q.db.ExecContext(ctx,
		`UPDATE jobs SET audio_source = ?, take = ?, status = ?, last_error = ?, output_path = ?,
		 started_at = ?, completed_at = ? WHERE id = ?`,
		job.AudioSource,
		int64(job.Take),
		string(job.Status),
		job.LastError,
		job.OutputPath,
		toUnix(job.StartedAt),
		toUnix(job.CompletedAt),
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return requireAffected(res)
}

func (q *JobQueue) Remove(id string) error {
	ctx := context.Background()
	res, err := q.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return requireAffected(res)
}

func (q *JobQueue) Clear() error {
	ctx := context.Background()
	if _, err := q.db.ExecContext(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("clear jobs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		job                             domain.Job
		take                            int64
		status                          string
		createdAt, startedAt, completed int64
	)
	err := row.Scan(
		&job.ID,
		&job.SourceFolder,
		&job.AudioSource,
		&take,
		&status,
		&job.LastError,
		&job.OutputPath,
		&createdAt,
		&startedAt,
		&completed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	job.Take = domain.Take(take)
	job.Status = domain.JobStatus(status)
	job.CreatedAt = fromUnix(createdAt)
	job.StartedAt = fromUnix(startedAt)
	job.CompletedAt = fromUnix(completed)
	return &job, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnix(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

var _ port.JobQueue = (*JobQueue)(nil)
