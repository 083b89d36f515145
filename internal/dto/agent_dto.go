package dto

import (
	"time"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// CreateAgentRequest defines the payload for registering an agent.
type CreateAgentRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" binding:"omitempty,email"`
	UserID   *string `json:"userID,omitempty"`
}

// UpdateAgentRequest defines the editable agent fields.
type UpdateAgentRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email" binding:"omitempty,email"`
	UserID   *string `json:"userID,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// AgentResponse is the API shape of an agent.
type AgentResponse struct {
	AgentID   string    `json:"agentID"`
	AgentCode string    `json:"agentCode"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UserID    *string   `json:"userID,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAgentResponse converts a domain.Agent to its API shape.
func ToAgentResponse(a *domain.Agent) AgentResponse {
	return AgentResponse{
		AgentID:   a.AgentID,
		AgentCode: a.AgentCode,
		Name:      a.Name,
		Location:  a.Location,
		Phone:     a.Phone,
		Email:     a.Email,
		UserID:    a.UserID,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}

// ToListAgentResponse converts a slice of agents to API shapes.
func ToListAgentResponse(agents []domain.Agent) []AgentResponse {
	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = ToAgentResponse(&agents[i])
	}
	return responses
}
