package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// AgentRepositoryFacade defines persistence operations for agents.
type AgentRepositoryFacade interface {
	// SaveAgent persists a new agent.
	SaveAgent(ctx context.Context, agent domain.Agent) error

	// FindAgentByID retrieves an agent by primary key.
	FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error)

	// ListAgents returns all agents, active first then by code.
	ListAgents(ctx context.Context) ([]domain.Agent, error)

	// UpdateAgent persists changes to an existing agent.
	UpdateAgent(ctx context.Context, agent domain.Agent) error
}
