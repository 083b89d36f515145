package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
)

// amlHandler handles goAML review and export of flagged transactions.
type amlHandler struct {
	amlService portssvc.AmlSvcFacade
}

func newAmlHandler(as portssvc.AmlSvcFacade) *amlHandler {
	return &amlHandler{amlService: as}
}

// registerAmlRoutes registers routes related to goAML compliance.
func registerAmlRoutes(rg *gin.RouterGroup, amlService portssvc.AmlSvcFacade) {
	h := newAmlHandler(amlService)

	aml := rg.Group("/aml")
	{
		aml.GET("/pending", h.listPending)
		aml.POST("/export", h.exportCSV)
		aml.POST("/mark-exported", h.markExported)
	}
}

// listPending godoc
// @Summary List transactions pending goAML export
// @Description Returns export-ready, not-yet-exported transactions, oldest first
// @Tags aml
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /aml/pending [get]
func (h *amlHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.amlService.ListPendingExport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pending goAML transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// exportCSV godoc
// @Summary Export flagged transactions as goAML CSV
// @Description Serializes the selected transactions into the fixed goAML CSV format; does not mark them exported
// @Tags aml
// @Accept  json
// @Produce  text/csv
// @Param   selection body dto.ExportTransactionsRequest true "Transaction IDs to export"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown transaction selected"
// @Security BearerAuth
// @Router /aml/export [post]
func (h *amlHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExportTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payload, err := h.amlService.ExportCSV(c.Request.Context(), req.TransactionIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build goAML export", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		}
		return
	}

	logger.Info("goAML export generated", slog.Int("transaction_count", len(req.TransactionIDs)))
	filename := fmt.Sprintf("goaml_export_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(payload))
}

// markExported godoc
// @Summary Mark transactions as exported
// @Description Stamps the export timestamp on still-eligible transactions and reports how many were marked
// @Tags aml
// @Accept  json
// @Produce  json
// @Param   selection body dto.MarkExportedRequest true "Transaction IDs to mark"
// @Success 200 {object} dto.MarkExportedResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /aml/mark-exported [post]
func (h *amlHandler) markExported(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkExportedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	marked, err := h.amlService.MarkExported(c.Request.Context(), req.TransactionIDs, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to mark transactions exported", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark transactions exported"})
		}
		return
	}

	logger.Info("Transactions marked exported", slog.Int64("marked", marked), slog.Int("selected", len(req.TransactionIDs)))
	c.JSON(http.StatusOK, dto.MarkExportedResponse{MarkedCount: marked})
}
