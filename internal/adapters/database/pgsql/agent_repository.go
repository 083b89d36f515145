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

const agentColumns = `agent_id, agent_code, name, location, phone, email, user_id, active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAgentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAgentRepository creates a new repository for agent records.
func NewPgxAgentRepository(pool *pgxpool.Pool) portsrepo.AgentRepositoryFacade {
	return &PgxAgentRepository{pool: pool}
}

func scanAgent(row pgx.CollectableRow) (domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(
		&a.AgentID,
		&a.AgentCode,
		&a.Name,
		&a.Location,
		&a.Phone,
		&a.Email,
		&a.UserID,
		&a.Active,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveAgent persists a new agent.
func (r *PgxAgentRepository) SaveAgent(ctx context.Context, agent domain.Agent) error {
	query := `
		INSERT INTO agents (` + agentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		agent.AgentID,
		agent.AgentCode,
		agent.Name,
		agent.Location,
		agent.Phone,
		agent.Email,
		agent.UserID,
		agent.Active,
		agent.CreatedAt,
		agent.CreatedBy,
		agent.LastUpdatedAt,
		agent.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save agent %s: %w", agent.AgentCode, err)
	}
	return nil
}

// FindAgentByID retrieves an agent by primary key.
func (r *PgxAgentRepository) FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE agent_id = $1;`
	rows, err := r.pool.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent %s: %w", agentID, err)
	}
	agent, err := pgx.CollectOneRow(rows, scanAgent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agent %s: %w", agentID, err)
	}
	return &agent, nil
}

// ListAgents returns all agents, active first then by code.
func (r *PgxAgentRepository) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents ORDER BY active DESC, agent_code ASC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	agents, err := pgx.CollectRows(rows, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to collect agents: %w", err)
	}
	return agents, nil
}

// UpdateAgent persists changes to an existing agent.
func (r *PgxAgentRepository) UpdateAgent(ctx context.Context, agent domain.Agent) error {
	query := `
		UPDATE agents SET
			name = $2,
			location = $3,
			phone = $4,
			email = $5,
			user_id = $6,
			active = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE agent_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		agent.AgentID,
		agent.Name,
		agent.Location,
		agent.Phone,
		agent.Email,
		agent.UserID,
		agent.Active,
		agent.LastUpdatedAt,
		agent.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update agent %s: %w", agent.AgentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
