package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
)

// TaskService implements task creation, actor-scoped listing, and status
// updates with the row-level ownership check.
type TaskService struct {
	tasks     ports.TaskRepository
	users     ports.UserRepository
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, customers ports.CustomerRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, customers: customers, logger: logger}
}

// Create persists a new task. The assignee must resolve to an existing user
// with role EMPLOYEE and the customer must exist. The assignee's role is only
// checked here; a later demotion does not cascade to existing assignments.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	assignee, err := s.users.FindByID(ctx, input.AssignedTo)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.BadRequest("Assigned user not found")
		}
		return nil, err
	}
	if assignee.Role != domain.RoleEmployee {
		return nil, domain.BadRequest("Tasks can only be assigned to EMPLOYEE role")
	}

	if _, err := s.customers.FindByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	status := domain.TaskStatus(input.Status)
	if status == "" {
		status = domain.StatusPending
	}

	task, err := s.tasks.Create(ctx, &domain.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		AssignedToID: input.AssignedTo,
		CustomerID:   input.CustomerID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("assigned_to", input.AssignedTo).
		Str("customer_id", input.CustomerID).
		Msg("task created")
	return task, nil
}

// ListForActor returns tasks visible to the actor: admins see every row,
// employees only rows assigned to them. The owner scope is passed explicitly
// to the repository so the decision is visible here.
func (s *TaskService) ListForActor(ctx context.Context, userID, role string) ([]domain.Task, error) {
	filter := ports.ListTasksFilter{}
	if role == domain.RoleEmployee {
		filter.AssignedTo = userID
	}
	return s.tasks.List(ctx, filter)
}

// UpdateStatus persists a new status after the ownership check: admins may
// update any task, employees only their own.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus, userID, role string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.UpdatableBy(userID, role) {
		return nil, domain.Forbidden("You can only update tasks assigned to you")
	}

	updated, err := s.tasks.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", taskID).Str("status", string(status)).Msg("task status updated")
	return updated, nil
}
