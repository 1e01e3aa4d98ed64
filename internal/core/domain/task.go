package domain

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a unit of work assigned to an employee on behalf of a customer.
// AssignedTo and Customer carry the joined public projections when the task
// was loaded with its references resolved.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Status       TaskStatus   `json:"status"`
	AssignedToID string       `json:"-"`
	CustomerID   string       `json:"customerId"`
	AssignedTo   *UserRef     `json:"assignedTo,omitempty"`
	Customer     *CustomerRef `json:"customer,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// UpdatableBy is the row-level ownership rule: admins may update any task,
// employees only tasks assigned to them.
func (t *Task) UpdatableBy(userID, role string) bool {
	if role == RoleAdmin {
		return true
	}
	return t.AssignedToID == userID
}
