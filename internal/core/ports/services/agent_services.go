package services

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// AgentSvcFacade manages agent records.
type AgentSvcFacade interface {
	// CreateAgent registers an agent, allocating the sequential agent code.
	CreateAgent(ctx context.Context, req dto.CreateAgentRequest, actorID string) (*domain.Agent, error)

	// GetAgent retrieves an agent by ID.
	GetAgent(ctx context.Context, agentID string) (*domain.Agent, error)

	// ListAgents returns all agents.
	ListAgents(ctx context.Context) ([]domain.Agent, error)

	// UpdateAgent applies edits to an existing agent.
	UpdateAgent(ctx context.Context, agentID string, req dto.UpdateAgentRequest, actorID string) (*domain.Agent, error)
}
