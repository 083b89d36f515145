package dto

import (
	"time"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// CreateCustomerRequest defines the onboarding payload with KYC fields.
type CreateCustomerRequest struct {
	FirstName    string     `json:"firstName" binding:"required"`
	LastName     string     `json:"lastName" binding:"required"`
	DateOfBirth  time.Time  `json:"dateOfBirth" binding:"required"`
	Phone        string     `json:"phone" binding:"required"`
	Email        string     `json:"email" binding:"omitempty,email"`
	Address      string     `json:"address"`
	Occupation   string     `json:"occupation"`
	Employer     string     `json:"employer"`
	IDType       string     `json:"idType" binding:"required,oneof=PASSPORT DRIVER_LICENCE NATIONAL_ID"`
	IDNumber     string     `json:"idNumber" binding:"required"`
	IDExpiryDate *time.Time `json:"idExpiryDate,omitempty"`
}

// UpdateCustomerRequest defines the editable customer fields.
type UpdateCustomerRequest struct {
	Phone        string     `json:"phone"`
	Email        string     `json:"email" binding:"omitempty,email"`
	Address      string     `json:"address"`
	Occupation   string     `json:"occupation"`
	Employer     string     `json:"employer"`
	IDType       string     `json:"idType" binding:"omitempty,oneof=PASSPORT DRIVER_LICENCE NATIONAL_ID"`
	IDNumber     string     `json:"idNumber"`
	IDExpiryDate *time.Time `json:"idExpiryDate,omitempty"`
	KycVerified  *bool      `json:"kycVerified,omitempty"`
}

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	CustomerID     string     `json:"customerID"`
	CustomerNumber string     `json:"customerNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	DateOfBirth    time.Time  `json:"dateOfBirth"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	Occupation     string     `json:"occupation"`
	Employer       string     `json:"employer"`
	IDType         string     `json:"idType"`
	IDNumber       string     `json:"idNumber"`
	IDExpiryDate   *time.Time `json:"idExpiryDate,omitempty"`
	KycVerified    bool       `json:"kycVerified"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to its API shape.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		CustomerNumber: c.CustomerNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		DateOfBirth:    c.DateOfBirth,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Occupation:     c.Occupation,
		Employer:       c.Employer,
		IDType:         string(c.IDType),
		IDNumber:       c.IDNumber,
		IDExpiryDate:   c.IDExpiryDate,
		KycVerified:    c.KycVerified,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of customers to API shapes.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
