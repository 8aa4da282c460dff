// Package customerrepo persists customer aggregates, mapping between the
// domain model and the customers table.
package customerrepo

import (
	"eats/internal/core/domain/model/customer"
	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database representation of a customer. The unique email
// index backs the application-level duplicate check.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Email       string `gorm:"uniqueIndex"`
	PhoneNumber string
	Address     string
	IsActive    bool
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		PhoneNumber: aggregate.PhoneNumber(),
		Address:     aggregate.Address(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		dto.Email,
		dto.PhoneNumber,
		dto.Address,
		dto.IsActive,
	)
}
