package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	row := taskRecord{
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		AssignedToID: task.AssignedToID,
		CustomerID:   task.CustomerID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	// Read back with the assignee and customer projections resolved.
	return r.FindByID(ctx, row.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var row taskRecord
	err := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Preload("Customer").
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Task")
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return row.toDomain(), nil
}

func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]domain.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("AssignedTo").
		Preload("Customer").
		Order("created_at DESC")
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to_id = ?", filter.AssignedTo)
	}

	var rows []taskRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, *rows[i].toDomain())
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	res := r.db.WithContext(ctx).Model(&taskRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return nil, fmt.Errorf("update task status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound("Task")
	}
	return r.FindByID(ctx, id)
}
