package domain

// Agent is a branch/partner operator with portal access. AgentCode is the
// sequential human-readable identifier (AGT prefix) allocated from the counter.
type Agent struct {
	AgentID   string  `json:"agentID"`
	AgentCode string  `json:"agentCode"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	UserID    *string `json:"userID,omitempty"` // linked login, if provisioned
	Active    bool    `json:"active"`
	AuditFields
}
