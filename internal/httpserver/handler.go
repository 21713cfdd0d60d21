package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	backofficeHTTP "cs-chat-simulator/internal/backoffice/delivery/http"
	cacheHTTP "cs-chat-simulator/internal/cache/delivery/http"
	chatHTTP "cs-chat-simulator/internal/chat/delivery/http"
	"cs-chat-simulator/internal/middleware"
	"cs-chat-simulator/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger stays off in production.
	if srv.environment != model.EnvironmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	cacheHTTP.RegisterRoutes(api, cacheHTTP.New(srv.l, srv.cacheUC))
	srv.l.Infof(ctx, "Cache domain registered")

	chatGroup := api.Group("")
	if srv.chatRatePerMin > 0 {
		chatGroup.Use(middleware.RateLimit(srv.chatRatePerMin))
	}
	chatHTTP.RegisterRoutes(chatGroup, chatHTTP.New(srv.l, srv.chatUC, srv.defaultUserID, srv.useMockData))
	srv.l.Infof(ctx, "Chat domain registered")

	backofficeHTTP.RegisterRoutes(api, backofficeHTTP.New(srv.l, srv.store))
	srv.l.Infof(ctx, "Backoffice domain registered")

	return nil
}
