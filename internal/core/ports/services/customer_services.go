package services

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data.
type CustomerReaderSvc interface {
	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers returns customers matching the search term.
	ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data.
type CustomerWriterSvc interface {
	// CreateCustomer onboards a customer, allocating the sequential customer number.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, error)

	// UpdateCustomer applies edits to an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actorID string) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer service interfaces.
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
