package ports

import (
	"context"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. Status defaults
// to PENDING when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	CustomerID  string
	Status      string
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	// ListForActor returns all tasks for admins and only the actor's own tasks
	// for employees, newest-first.
	ListForActor(ctx context.Context, userID, role string) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus, userID, role string) (*domain.Task, error)
}
