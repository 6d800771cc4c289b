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

// historyHandler handles HTTP requests for the aggregate history views.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{
		historyService: hs,
	}
}

// registerHistoryRoutes registers routes related to aggregate history.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("/periods", h.listPeriods)
		history.GET("/data", h.getHistoryData)
	}
}

// listPeriods godoc
// @Summary List years with recorded data
// @Description Retrieves the distinct years the logged-in user has aggregate data for, ascending; the current year when there is none yet
// @Tags history
// @Produce  json
// @Success 200 {array} int
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list periods"
// @Security BearerAuth
// @Router /history/periods [get]
func (h *historyHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	years, err := h.historyService.ListPeriods(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list periods from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list periods"})
		return
	}

	c.JSON(http.StatusOK, years)
}

// getHistoryData godoc
// @Summary Get aggregate history data
// @Description Retrieves per-day rows for a month timeframe or per-month rows for a year timeframe. Month is the 0-based calendar index.
// @Tags history
// @Produce  json
// @Param   timeframe query string true "Either month or year"
// @Param   month query int false "0-based month index, required for the month timeframe"
// @Param   year query int true "Calendar year"
// @Success 200 {array} dto.HistoryDataRow
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get history data"
// @Security BearerAuth
// @Router /history/data [get]
func (h *historyHandler) getHistoryData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.HistoryDataParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetHistoryData", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("timeframe", params.Timeframe))

	var rows []dto.HistoryDataRow
	var err error
	if params.Timeframe == "month" {
		mh, findErr := h.historyService.GetMonthHistory(c.Request.Context(), userID, params.Month, params.Year)
		rows, err = dto.ToMonthHistoryRows(mh), findErr
	} else {
		yh, findErr := h.historyService.GetYearHistory(c.Request.Context(), userID, params.Year)
		rows, err = dto.ToYearHistoryRows(yh), findErr
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error getting history data", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get history data from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history data"})
		}
		return
	}

	c.JSON(http.StatusOK, rows)
}
