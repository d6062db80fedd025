package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/config"
	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	config_http "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/presentation/http"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/application"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/infrastructure"
	pipeline_http "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/presentation/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	logger, err := newLogger(settings.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	appConfig, err := config.NewAppConfigService(settings.AppConfigPath, logger).LoadAppConfig()
	if err != nil {
		logger.Fatal("failed to load app config", zap.Error(err))
	}

	// One model service binding shared by all four roles
	openaiClient, err := infrastructure.NewOpenAIClient(settings.AIConfig(), logger.Named("openai"))
	if err != nil {
		logger.Fatal("failed to create OpenAI client", zap.Error(err))
	}

	orchestrator := application.NewOrchestrator(openaiClient, appConfig, logger.Named("pipeline"))

	pageTemplate, err := pipeline_http.PageTemplate()
	if err != nil {
		logger.Fatal("failed to parse page templates", zap.Error(err))
	}

	r := newRouter(orchestrator, appConfig, pageTemplate, logger)

	logger.Info("listening", zap.String("addr", settings.ListenAddr), zap.String("model", settings.OpenAIModel))
	if err := r.Run(settings.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newRouter(orchestrator application.Orchestrator, appConfig *configdomain.AppConfig, pageTemplate *template.Template, logger *zap.Logger) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(pageTemplate)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler := pipeline_http.NewPipelineHandler(orchestrator, appConfig, logger.Named("http"))
	r.GET("/", handler.PageHandler)
	r.POST("/", handler.GenerateHandler)

	// Pipeline API routes
	pipelineGroup := r.Group("/api/pipeline")
	{
		pipelineGroup.POST("/run", handler.RunHandler)
		pipelineGroup.POST("/stream", handler.StreamHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		configGroup.GET("/app", config_http.NewAppConfigHandler(appConfig).GetAppConfigHandler)
	}

	return r
}
