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

// rateHandler handles HTTP requests for daily rates and rate settings.
type rateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newRateHandler(rs portssvc.ExchangeRateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates. Mutations
// are admin-only.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getDailyRates)
		rates.PUT("", middleware.RequireAdmin(), h.upsertRate)
		rates.POST("/refresh", middleware.RequireAdmin(), h.refreshRates)
		rates.GET("/settings", h.getRateSettings)
		rates.PUT("/settings", middleware.RequireAdmin(), h.updateRateSettings)
	}
}

// getDailyRates godoc
// @Summary Get rates for a date
// @Description Returns base and margin-adjusted rates for every supported currency; falls back to built-in defaults when no record exists
// @Tags rates
// @Produce  json
// @Param   date query string false "Date key (YYYY-MM-DD), defaults to today in the operating time zone"
// @Success 200 {object} dto.DailyRatesResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) getDailyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.GetDailyRates(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get daily rates from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		}
		return
	}

	c.JSON(http.StatusOK, rates)
}

// upsertRate godoc
// @Summary Set rates for a date
// @Description Inserts or replaces the base rates for a calendar date (manual admin entry)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertExchangeRateRequest true "Base rates for the date"
// @Success 200 {object} dto.DailyRatesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /rates [put]
func (h *rateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.UpsertExchangeRate(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert exchange rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rates"})
		}
		return
	}

	logger.Info("Exchange rate saved", slog.String("date_key", rate.DateKey))
	rates, err := h.rateService.GetDailyRates(c.Request.Context(), rate.DateKey)
	if err != nil {
		logger.Error("Failed to reload saved rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload saved rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// refreshRates godoc
// @Summary Refresh today's rates from the external feed
// @Description Fetches the day's base rates from the configured feed and stores them with source API
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.DailyRatesResponse
// @Failure 400 {object} map[string]string "No feed configured"
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.RefreshRatesFromAPI(c.Request.Context(), actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Rate refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch rates from the external feed"})
		}
		return
	}

	logger.Info("Rates refreshed from feed", slog.String("date_key", rate.DateKey))
	rates, err := h.rateService.GetDailyRates(c.Request.Context(), rate.DateKey)
	if err != nil {
		logger.Error("Failed to reload refreshed rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload refreshed rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

// getRateSettings godoc
// @Summary Get rate settings
// @Description Returns the rate settings singleton (margin, auto update), defaults if never saved
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSettingsResponse
// @Security BearerAuth
// @Router /rates/settings [get]
func (h *rateHandler) getRateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.rateService.GetRateSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get rate settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateSettingsResponse(settings))
}

// updateRateSettings godoc
// @Summary Update rate settings
// @Description Replaces the rate settings singleton (profit margin, auto update schedule)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateRateSettingsRequest true "Rate settings"
// @Success 200 {object} dto.RateSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /rates/settings [put]
func (h *rateHandler) updateRateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.rateService.UpdateRateSettings(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update rate settings in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate settings"})
		}
		return
	}

	logger.Info("Rate settings updated", slog.String("margin", settings.ProfitMarginPercent.String()))
	c.JSON(http.StatusOK, dto.ToRateSettingsResponse(settings))
}
