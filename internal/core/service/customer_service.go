package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CustomerService implements customer CRUD with pagination and search.
type CustomerService struct {
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer, err := s.customers.Create(ctx, &domain.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

// List returns a page of customers. Page and limit fall back to 1 and 10 when
// absent or not positive; totalPages is ceil(totalRecords/limit).
func (s *CustomerService) List(ctx context.Context, input ports.ListCustomersInput) (*ports.CustomerPage, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	customers, total, err := s.customers.List(ctx, ports.ListCustomersFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.CustomerPage{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		TotalPages:   totalPages,
		Data:         customers,
	}, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
	customer, err := s.customers.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer updated")
	return customer, nil
}

// Delete removes the customer permanently. A second delete of the same id
// fails NotFound just like the first one after it succeeded.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
