package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// CustomerService provides business logic for customer onboarding and KYC.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	counterRepo  portsrepo.CounterRepository
	activityRepo portsrepo.ActivityLogRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, counterRepo portsrepo.CounterRepository, activityRepo portsrepo.ActivityLogRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		counterRepo:  counterRepo,
		activityRepo: activityRepo,
	}
}

// CreateCustomer onboards a customer, allocating the sequential customer number.
func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, actorID string) (*domain.Customer, error) {
	seq, err := s.counterRepo.NextCounterValue(ctx, domain.CounterCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate customer number: %w", err)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		CustomerNumber: fmt.Sprintf("CUS%06d", seq),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		Occupation:     req.Occupation,
		Employer:       req.Employer,
		IDType:         domain.IDDocumentType(req.IDType),
		IDNumber:       req.IDNumber,
		IDExpiryDate:   req.IDExpiryDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "CUSTOMER_CREATED", "customer", customer.CustomerID, customer.CustomerNumber)
	return &customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer in service: %w", err)
	}
	return customer, nil
}

// ListCustomers returns customers matching the search term.
func (s *CustomerService) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	customers, err := s.customerRepo.ListCustomers(ctx, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers in service: %w", err)
	}
	return customers, nil
}

// UpdateCustomer applies edits to an existing customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actorID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer for update: %w", err)
	}

	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.Occupation != "" {
		customer.Occupation = req.Occupation
	}
	if req.Employer != "" {
		customer.Employer = req.Employer
	}
	if req.IDType != "" {
		customer.IDType = domain.IDDocumentType(req.IDType)
	}
	if req.IDNumber != "" {
		customer.IDNumber = req.IDNumber
	}
	if req.IDExpiryDate != nil {
		customer.IDExpiryDate = req.IDExpiryDate
	}
	if req.KycVerified != nil {
		customer.KycVerified = *req.KycVerified
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = actorID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "CUSTOMER_UPDATED", "customer", customer.CustomerID, customer.CustomerNumber)
	return customer, nil
}
