package http

import (
	"net/http"

	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/application"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PipelineHandler holds the orchestrator and the startup app config.
type PipelineHandler struct {
	orchestrator application.Orchestrator
	appConfig    *configdomain.AppConfig
	logger       *zap.Logger
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(orchestrator application.Orchestrator, appConfig *configdomain.AppConfig, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{
		orchestrator: orchestrator,
		appConfig:    appConfig,
		logger:       logger,
	}
}

// PageHandler renders the empty form seeded with the default requirements.
func (h *PipelineHandler) PageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, PageTemplateName, &pageData{
		Requirements: h.appConfig.DefaultRequirements,
		Roles:        h.orchestrator.Roles(),
	})
}

// GenerateHandler runs the pipeline for the submitted form and renders
// whatever stages completed.
func (h *PipelineHandler) GenerateHandler(c *gin.Context) {
	requirements := c.PostForm("requirements")
	page := &pageData{
		Requirements: requirements,
		Roles:        h.orchestrator.Roles(),
		Submitted:    true,
	}

	status := http.StatusOK
	if _, err := h.orchestrator.Run(c.Request.Context(), requirements, page); err != nil {
		h.logger.Error("pipeline run failed", zap.Error(err))
		page.Error = "Failed to run pipeline: " + err.Error()
		status = http.StatusBadGateway
	}
	c.HTML(status, PageTemplateName, page)
}

// RunHandler handles the JSON API for a single pipeline run.
func (h *PipelineHandler) RunHandler(c *gin.Context) {
	var req domain.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orchestrator.Run(c.Request.Context(), req.Requirements, nil)
	if err != nil {
		h.logger.Error("pipeline run failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to run pipeline: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// StreamHandler runs the pipeline and sends one "stage" server-sent event per
// finished stage, then a "result" or "error" event.
func (h *PipelineHandler) StreamHandler(c *gin.Context) {
	var req domain.RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	observer := application.ObserverFunc(func(event domain.StageEvent) {
		c.SSEvent("stage", event)
		c.Writer.Flush()
	})

	result, err := h.orchestrator.Run(c.Request.Context(), req.Requirements, observer)
	if err != nil {
		h.logger.Error("pipeline stream failed", zap.Error(err))
		c.SSEvent("error", gin.H{"error": "Failed to run pipeline: " + err.Error()})
		c.Writer.Flush()
		return
	}
	c.SSEvent("result", *result)
	c.Writer.Flush()
}
