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

// settingsHandler handles HTTP requests for user settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to user settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getUserSettings)
		settings.PUT("/currency", h.updateUserCurrency)
	}
}

// getUserSettings godoc
// @Summary Get the logged-in user's settings
// @Description Retrieves the user's settings, provisioning defaults on first access
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to get settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getUserSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.GetUserSettings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get user settings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}

// updateUserCurrency godoc
// @Summary Update the preferred currency
// @Description Sets the logged-in user's preferred currency after validating it against the supported list
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   currency body dto.UpdateUserCurrencyRequest true "New currency code"
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input format or unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /settings/currency [put]
func (h *settingsHandler) updateUserCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateUserCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("currency", req.Currency))

	settings, err := h.settingsService.UpdateUserCurrency(c.Request.Context(), userID, req.Currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unsupported currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currency"})
		}
		return
	}

	logger.Info("User currency updated successfully")
	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}
