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

// AgentService provides business logic for agent records.
type AgentService struct {
	agentRepo    portsrepo.AgentRepositoryFacade
	counterRepo  portsrepo.CounterRepository
	activityRepo portsrepo.ActivityLogRepository
}

// NewAgentService creates a new AgentService.
func NewAgentService(agentRepo portsrepo.AgentRepositoryFacade, counterRepo portsrepo.CounterRepository, activityRepo portsrepo.ActivityLogRepository) *AgentService {
	return &AgentService{
		agentRepo:    agentRepo,
		counterRepo:  counterRepo,
		activityRepo: activityRepo,
	}
}

// CreateAgent registers an agent, allocating the sequential agent code.
func (s *AgentService) CreateAgent(ctx context.Context, req dto.CreateAgentRequest, actorID string) (*domain.Agent, error) {
	seq, err := s.counterRepo.NextCounterValue(ctx, domain.CounterAgents)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate agent code: %w", err)
	}

	now := time.Now()
	agent := domain.Agent{
		AgentID:   uuid.NewString(),
		AgentCode: fmt.Sprintf("AGT%04d", seq),
		Name:      req.Name,
		Location:  req.Location,
		Phone:     req.Phone,
		Email:     req.Email,
		UserID:    req.UserID,
		Active:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.agentRepo.SaveAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to create agent in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "AGENT_CREATED", "agent", agent.AgentID, agent.AgentCode)
	return &agent, nil
}

// GetAgent retrieves an agent by ID.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*domain.Agent, error) {
	agent, err := s.agentRepo.FindAgentByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent in service: %w", err)
	}
	return agent, nil
}

// ListAgents returns all agents.
func (s *AgentService) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents in service: %w", err)
	}
	return agents, nil
}

// UpdateAgent applies edits to an existing agent.
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, req dto.UpdateAgentRequest, actorID string) (*domain.Agent, error) {
	agent, err := s.agentRepo.FindAgentByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent for update: %w", err)
	}

	if req.Name != "" {
		agent.Name = req.Name
	}
	if req.Location != "" {
		agent.Location = req.Location
	}
	if req.Phone != "" {
		agent.Phone = req.Phone
	}
	if req.Email != "" {
		agent.Email = req.Email
	}
	if req.UserID != nil {
		agent.UserID = req.UserID
	}
	if req.Active != nil {
		agent.Active = *req.Active
	}
	agent.LastUpdatedAt = time.Now()
	agent.LastUpdatedBy = actorID

	if err := s.agentRepo.UpdateAgent(ctx, *agent); err != nil {
		return nil, fmt.Errorf("failed to update agent in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "AGENT_UPDATED", "agent", agent.AgentID, agent.AgentCode)
	return agent, nil
}
