package ports

import (
	"context"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// ListCustomersFilter carries pagination and search parameters for listing
// customers. Page and Limit are normalized by the service before the
// repository sees them.
type ListCustomersFilter struct {
	// Search, when non-empty, matches case-insensitively against
	// name/email/company and as a substring against phone, combined with OR.
	Search string
	Page   int // 1-based
	Limit  int
}

// UpdateCustomerFields holds a partial update; nil pointers mean "leave as is".
type UpdateCustomerFields struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// List returns a page of customers ordered newest-first and the total count
	// of rows matching the filter.
	List(ctx context.Context, filter ListCustomersFilter) ([]domain.Customer, int64, error)
	Update(ctx context.Context, id string, fields UpdateCustomerFields) (*domain.Customer, error)
	// Delete removes the row permanently. Deleting an absent row is an error.
	Delete(ctx context.Context, id string) error
}
