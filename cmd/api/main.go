package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cs-chat-simulator/config"
	_ "cs-chat-simulator/docs" // Swagger docs
	"cs-chat-simulator/internal/agent"
	"cs-chat-simulator/internal/agent/tools"
	"cs-chat-simulator/internal/backoffice"
	cacheUC "cs-chat-simulator/internal/cache/usecase"
	chatUC "cs-chat-simulator/internal/chat/usecase"
	"cs-chat-simulator/internal/httpserver"
	"cs-chat-simulator/internal/model"
	"cs-chat-simulator/pkg/gemini"
	"cs-chat-simulator/pkg/log"
	"cs-chat-simulator/pkg/mockllm"
)

// @title       CS Chat Simulator API
// @description Customer-service chat simulation broker: grounding-context caches, a dual-model streaming pipeline, and demo backoffice endpoints.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CS Chat Simulator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Grounding model: %s, tool model: %s", cfg.Gemini.GroundingModel, cfg.Gemini.ToolModel)

	// 3. Gemini client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing; only mock-data chat turns will work")
	}

	// 4. Tool registry over the demo backoffice
	registry := agent.NewToolRegistry()
	tools.RegisterAll(registry, cfg.HTTPServer.BackofficeURL, &http.Client{Timeout: cfg.Gemini.Timeout})
	logger.Infof(ctx, "Registered %d customer-service tools", len(registry.List()))

	// 5. UseCases
	cacheUseCase := cacheUC.New(geminiClient, logger)
	chatUseCase := chatUC.New(logger, geminiClient, mockllm.New(), registry, chatUC.Config{
		GroundingModel: cfg.Gemini.GroundingModel,
		ToolModel:      cfg.Gemini.ToolModel,
		TurnTimeout:    cfg.Chat.TurnTimeout,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    model.Environment(cfg.Environment.Name),
		CacheUC:        cacheUseCase,
		ChatUC:         chatUseCase,
		Store:          backoffice.NewStore(),
		ChatRatePerMin: cfg.HTTPServer.ChatRatePerMin,
		DefaultUserID:  cfg.Session.UserID,
		UseMockData:    cfg.Chat.UseMockData,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
