package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
)

// AppConfigHandler serves the configuration the process started with.
type AppConfigHandler struct {
	appConfig *domain.AppConfig
}

// NewAppConfigHandler creates a new AppConfigHandler.
func NewAppConfigHandler(appConfig *domain.AppConfig) *AppConfigHandler {
	return &AppConfigHandler{
		appConfig: appConfig,
	}
}

// GetAppConfigHandler handles fetching the application configuration.
func (h *AppConfigHandler) GetAppConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.appConfig)
}
