package domain

import "time"

// IDDocumentType enumerates the accepted KYC identification documents.
type IDDocumentType string

const (
	IDDocPassport      IDDocumentType = "PASSPORT"
	IDDocDriverLicence IDDocumentType = "DRIVER_LICENCE"
	IDDocNationalID    IDDocumentType = "NATIONAL_ID"
)

// Customer is a sender onboarded through KYC. CustomerNumber is the sequential
// human-readable identifier (CUS prefix) allocated from the counter.
type Customer struct {
	CustomerID     string         `json:"customerID"`
	CustomerNumber string         `json:"customerNumber"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	DateOfBirth    time.Time      `json:"dateOfBirth"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Address        string         `json:"address"`
	Occupation     string         `json:"occupation"`
	Employer       string         `json:"employer"`
	IDType         IDDocumentType `json:"idType"`
	IDNumber       string         `json:"idNumber"`
	IDExpiryDate   *time.Time     `json:"idExpiryDate,omitempty"`
	KycVerified    bool           `json:"kycVerified"`
	AuditFields
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
