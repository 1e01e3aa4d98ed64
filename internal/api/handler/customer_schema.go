package handler

type createCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Company string `json:"company" validate:"omitempty"`
}

// updateCustomerRequest is a partial update; only fields present in the
// payload are applied.
type updateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"   validate:"omitempty,min=1"`
	Company *string `json:"company" validate:"omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
