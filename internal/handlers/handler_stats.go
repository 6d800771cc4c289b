package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
	"github.com/budgetwise/budget_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler handles HTTP requests for dashboard statistics.
type statsHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newStatsHandler creates a new statsHandler.
func newStatsHandler(ls portssvc.LedgerSvcFacade) *statsHandler {
	return &statsHandler{
		ledgerService: ls,
	}
}

// registerStatsRoutes registers routes related to statistics.
func registerStatsRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newStatsHandler(ledgerService)

	stats := rg.Group("/stats")
	{
		stats.GET("/balance", h.getBalanceStats)
		stats.GET("/categories", h.getCategoryStats)
	}
}

// getBalanceStats godoc
// @Summary Get balance statistics
// @Description Sums income and expense amounts over a date range and returns their difference
// @Tags stats
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceStatsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get balance stats"
// @Security BearerAuth
// @Router /stats/balance [get]
func (h *statsHandler) getBalanceStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.StatsRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetBalanceStats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.ledgerService.GetBalanceStats(c.Request.Context(), userID, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get balance stats from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceStatsResponse(stats))
}

// getCategoryStats godoc
// @Summary Get per-category statistics
// @Description Sums amounts grouped by type and category over a date range, largest sums first
// @Tags stats
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryStatsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get category stats"
// @Security BearerAuth
// @Router /stats/categories [get]
func (h *statsHandler) getCategoryStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.StatsRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetCategoryStats", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.ledgerService.GetCategoryStats(c.Request.Context(), userID, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get category stats from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryStatsResponse(stats))
}
