package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

const customerColumns = `customer_id, customer_number, first_name, last_name, date_of_birth,
	phone, email, address, occupation, employer,
	id_type, id_number, id_expiry_date, kyc_verified,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

func scanCustomer(row pgx.CollectableRow) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.CustomerNumber,
		&c.FirstName,
		&c.LastName,
		&c.DateOfBirth,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.Occupation,
		&c.Employer,
		&c.IDType,
		&c.IDNumber,
		&c.IDExpiryDate,
		&c.KycVerified,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCustomer persists a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.CustomerNumber,
		customer.FirstName,
		customer.LastName,
		customer.DateOfBirth,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Occupation,
		customer.Employer,
		customer.IDType,
		customer.IDNumber,
		customer.IDExpiryDate,
		customer.KycVerified,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerNumber, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by primary key.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %s: %w", customerID, err)
	}
	customer, err := pgx.CollectOneRow(rows, scanCustomer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &customer, nil
}

// ListCustomers returns customers matching the search term (name or customer
// number, case-insensitive), newest first.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE $1 = ''
		   OR customer_number ILIKE '%' || $1 || '%'
		   OR (first_name || ' ' || last_name) ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers, err := pgx.CollectRows(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to collect customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer persists changes to an existing customer.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers SET
			phone = $2,
			email = $3,
			address = $4,
			occupation = $5,
			employer = $6,
			id_type = $7,
			id_number = $8,
			id_expiry_date = $9,
			kyc_verified = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Occupation,
		customer.Employer,
		customer.IDType,
		customer.IDNumber,
		customer.IDExpiryDate,
		customer.KycVerified,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
