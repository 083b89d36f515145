package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
)

// agentHandler handles HTTP requests for agent records.
type agentHandler struct {
	agentService portssvc.AgentSvcFacade
}

func newAgentHandler(as portssvc.AgentSvcFacade) *agentHandler {
	return &agentHandler{agentService: as}
}

// registerAgentRoutes registers routes related to agents. Mutations are
// admin-only.
func registerAgentRoutes(rg *gin.RouterGroup, agentService portssvc.AgentSvcFacade) {
	h := newAgentHandler(agentService)

	agents := rg.Group("/agents")
	{
		agents.POST("", middleware.RequireAdmin(), h.createAgent)
		agents.GET("", h.listAgents)
		agents.GET("/:id", h.getAgent)
		agents.PUT("/:id", middleware.RequireAdmin(), h.updateAgent)
	}
}

// createAgent godoc
// @Summary Register a new agent
// @Description Creates an agent record and allocates the sequential agent code
// @Tags agents
// @Accept  json
// @Produce  json
// @Param   agent body dto.CreateAgentRequest true "Agent details"
// @Success 201 {object} dto.AgentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /agents [post]
func (h *agentHandler) createAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agent, err := h.agentService.CreateAgent(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create agent in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		}
		return
	}

	logger.Info("Agent created", slog.String("agent_code", agent.AgentCode))
	c.JSON(http.StatusCreated, dto.ToAgentResponse(agent))
}

// listAgents godoc
// @Summary List agents
// @Description Returns all agents, active first then by code
// @Tags agents
// @Produce  json
// @Success 200 {array} dto.AgentResponse
// @Security BearerAuth
// @Router /agents [get]
func (h *agentHandler) listAgents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agents, err := h.agentService.ListAgents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list agents in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list agents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAgentResponse(agents))
}

// getAgent godoc
// @Summary Get an agent
// @Description Retrieves an agent by ID
// @Tags agents
// @Produce  json
// @Param   id path string true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} map[string]string "Agent not found"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *agentHandler) getAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	agent, err := h.agentService.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		} else {
			logger.Error("Failed to get agent from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve agent"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}

// updateAgent godoc
// @Summary Update an agent
// @Description Applies edits to an existing agent, including activation state
// @Tags agents
// @Accept  json
// @Produce  json
// @Param   id path string true "Agent ID"
// @Param   agent body dto.UpdateAgentRequest true "Fields to update"
// @Success 200 {object} dto.AgentResponse
// @Failure 404 {object} map[string]string "Agent not found"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /agents/{id} [put]
func (h *agentHandler) updateAgent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	agent, err := h.agentService.UpdateAgent(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update agent in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent"})
		}
		return
	}

	logger.Info("Agent updated", slog.String("agent_code", agent.AgentCode))
	c.JSON(http.StatusOK, dto.ToAgentResponse(agent))
}
