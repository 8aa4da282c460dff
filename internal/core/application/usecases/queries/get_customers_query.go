package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves a page of customers ordered by name.
type GetCustomersQuery struct {
	page Page

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query for a page of customers.
func NewGetCustomersQuery(skip, limit int) GetCustomersQuery {
	return GetCustomersQuery{
		page:  NewPage(skip, limit),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CustomerResponse is the customer read model.
type CustomerResponse struct {
	ID          kernel.UUID
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	IsActive    bool
}

// GetCustomersQueryHandler serves the customer list read model.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer listing.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns the requested page of customers sorted by name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone_number,
			address,
			is_active
		FROM customers
		ORDER BY name
		OFFSET ? LIMIT ?
	`, query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		customer, scanErr := scanCustomerRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func scanCustomerRow(scan func(dest ...any) error) (CustomerResponse, error) {
	var (
		customer CustomerResponse
		id       uuid.UUID
	)

	if err := scan(
		&id,
		&customer.Name,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.Address,
		&customer.IsActive,
	); err != nil {
		return CustomerResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerResponse{}, err
	}
	customer.ID = customerID
	return customer, nil
}
