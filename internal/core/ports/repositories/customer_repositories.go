package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by primary key.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers returns customers matching the search term (name or
	// customer number, case-insensitive), newest first.
	ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data.
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer persists changes to an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
