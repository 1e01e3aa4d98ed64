package handler

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	AssignedTo  string `json:"assignedTo"  validate:"required"`
	CustomerID  string `json:"customerId"  validate:"required"`
	Status      string `json:"status"      validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS DONE"`
}
