package port

import "github.com/sadalchemist/alchemist/internal/domain"

// JobQueue holds the ordered jobs of a batch.
type JobQueue interface {
	Enqueue(job *domain.Job) error
	Get(id string) (*domain.Job, error)
	FindByFolder(folder string) (*domain.Job, error)
	List() ([]*domain.Job, error)
	Update(job *domain.Job) error
	Remove(id string) error
	Clear() error
}
