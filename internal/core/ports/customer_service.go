package ports

import (
	"context"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// CreateCustomerInput carries the data needed to create a customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// ListCustomersInput carries raw pagination and search parameters as received
// from the request; the service applies defaults.
type ListCustomersInput struct {
	Page   int
	Limit  int
	Search string
}

// CustomerPage is the paginated list envelope.
type CustomerPage struct {
	Page         int               `json:"page"`
	Limit        int               `json:"limit"`
	TotalRecords int64             `json:"totalRecords"`
	TotalPages   int               `json:"totalPages"`
	Data         []domain.Customer `json:"data"`
}

type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context, input ListCustomersInput) (*CustomerPage, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, fields UpdateCustomerFields) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
