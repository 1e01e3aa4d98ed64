package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/ports"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	row := customerRecord{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Company: customer.Company,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.Conflict("Customer", "email")
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var row customerRecord
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Customer")
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return row.toDomain(), nil
}

// List returns one page of customers ordered newest-first plus the total
// count of rows matching the search. The search ORs a case-insensitive match
// on name/email/company with a substring match on phone.
func (r *CustomerRepository) List(ctx context.Context, filter ports.ListCustomersFilter) ([]domain.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&customerRecord{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR company ILIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	var rows []customerRecord
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, *rows[i].toDomain())
	}
	return customers, total, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
	updates := map[string]any{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Email != nil {
		updates["email"] = *fields.Email
	}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.Company != nil {
		updates["company"] = *fields.Company
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&customerRecord{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, domain.Conflict("Customer", "email")
			}
			return nil, fmt.Errorf("update customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.NotFound("Customer")
		}
	}
	return r.FindByID(ctx, id)
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&customerRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("Customer")
	}
	return nil
}
