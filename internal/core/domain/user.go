package domain

// UserRole is the back-office role attached to a login.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleAgent UserRole = "AGENT"
)

// User is a back-office login (admin staff or agent operator).
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Disabled     bool     `json:"disabled"`
	AuditFields
}
