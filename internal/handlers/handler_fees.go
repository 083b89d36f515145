package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
)

// feeHandler handles HTTP requests for fee configuration and quoting.
type feeHandler struct {
	feeService portssvc.FeeSvcFacade
}

func newFeeHandler(fs portssvc.FeeSvcFacade) *feeHandler {
	return &feeHandler{feeService: fs}
}

// registerFeeRoutes registers routes related to fees. Mutations are admin-only.
func registerFeeRoutes(rg *gin.RouterGroup, feeService portssvc.FeeSvcFacade) {
	h := newFeeHandler(feeService)

	fees := rg.Group("/fees")
	{
		fees.GET("/quote", h.quoteFee)
		fees.GET("/settings", h.getFeeSettings)
		fees.PUT("/settings", middleware.RequireAdmin(), h.updateFeeSettings)
		fees.GET("/brackets", h.listFeeBrackets)
		fees.PUT("/brackets", middleware.RequireAdmin(), h.replaceFeeBrackets)
	}
}

// quoteFee godoc
// @Summary Quote the fee for an amount
// @Description Returns the NZD fee for a transfer amount under the active settings (live preview)
// @Tags fees
// @Produce  json
// @Param   amount query string true "Transfer amount in NZD dollars"
// @Success 200 {object} dto.FeeQuoteResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Security BearerAuth
// @Router /fees/quote [get]
func (h *feeHandler) quoteFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'amount' query parameter"})
		return
	}

	fee, err := h.feeService.QuoteFee(c.Request.Context(), amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to quote fee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quote fee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FeeQuoteResponse{AmountNzd: amount, FeeNzd: fee})
}

// getFeeSettings godoc
// @Summary Get fee settings
// @Description Returns the fee settings singleton, creating the default (fixed $5) if none exists
// @Tags fees
// @Produce  json
// @Success 200 {object} dto.FeeSettingsResponse
// @Security BearerAuth
// @Router /fees/settings [get]
func (h *feeHandler) getFeeSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.feeService.GetFeeSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get fee settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fee settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeSettingsResponse(settings))
}

// updateFeeSettings godoc
// @Summary Update fee settings
// @Description Replaces the fee settings singleton after validation (minimum must not exceed maximum)
// @Tags fees
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateFeeSettingsRequest true "Fee settings"
// @Success 200 {object} dto.FeeSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /fees/settings [put]
func (h *feeHandler) updateFeeSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFeeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.feeService.UpdateFeeSettings(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update fee settings in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fee settings"})
		}
		return
	}

	logger.Info("Fee settings updated", slog.String("fee_type", string(settings.FeeType)))
	c.JSON(http.StatusOK, dto.ToFeeSettingsResponse(settings))
}

// listFeeBrackets godoc
// @Summary List fee brackets
// @Description Returns the bracket set ordered by ascending minimum amount
// @Tags fees
// @Produce  json
// @Success 200 {array} dto.FeeBracketResponse
// @Security BearerAuth
// @Router /fees/brackets [get]
func (h *feeHandler) listFeeBrackets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	brackets, err := h.feeService.ListFeeBrackets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list fee brackets in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fee brackets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeBracketResponses(brackets))
}

// replaceFeeBrackets godoc
// @Summary Replace the fee bracket set
// @Description Replaces the whole bracket set in one operation; no previous brackets survive
// @Tags fees
// @Accept  json
// @Produce  json
// @Param   brackets body dto.ReplaceFeeBracketsRequest true "New bracket set"
// @Success 200 {array} dto.FeeBracketResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /fees/brackets [put]
func (h *feeHandler) replaceFeeBrackets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceFeeBracketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	brackets, err := h.feeService.ReplaceFeeBrackets(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to replace fee brackets in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace fee brackets"})
		}
		return
	}

	logger.Info("Fee brackets replaced", slog.Int("count", len(brackets)))
	c.JSON(http.StatusOK, dto.ToFeeBracketResponses(brackets))
}
