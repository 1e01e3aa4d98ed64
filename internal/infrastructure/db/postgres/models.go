package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// Row structs are private to this package; the repositories map them to and
// from the domain types so the schema never leaks into the core.

type userRecord struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (u *userRecord) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type customerRecord struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string `gorm:"not null"`
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerRecord) TableName() string { return "customers" }

func (c *customerRecord) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type taskRecord struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Status       string          `gorm:"not null"`
	AssignedToID string          `gorm:"type:uuid;index;not null"`
	CustomerID   string          `gorm:"type:uuid;index;not null"`
	AssignedTo   *userRecord     `gorm:"foreignKey:AssignedToID"`
	Customer     *customerRecord `gorm:"foreignKey:CustomerID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (taskRecord) TableName() string { return "tasks" }

func (t *taskRecord) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t *taskRecord) toDomain() *domain.Task {
	task := &domain.Task{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       domain.TaskStatus(t.Status),
		AssignedToID: t.AssignedToID,
		CustomerID:   t.CustomerID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.AssignedTo != nil {
		ref := t.AssignedTo.toDomain().Ref()
		task.AssignedTo = &ref
	}
	if t.Customer != nil {
		ref := t.Customer.toDomain().Ref()
		task.Customer = &ref
	}
	return task
}
