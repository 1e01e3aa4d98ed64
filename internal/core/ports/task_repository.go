package ports

import (
	"context"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// ListTasksFilter is the explicit owner scope for listing tasks.
// AssignedTo empty = no filter (admin); non-empty = only that user's tasks.
// The authorization decision is made at the call site, not inside the query.
type ListTasksFilter struct {
	AssignedTo string
}

// TaskRepository defines persistence operations for tasks. Reads resolve the
// assignee and customer references into their public projections.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks matching filter ordered newest-first.
	List(ctx context.Context, filter ListTasksFilter) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
}
