package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"cs-chat-simulator/internal/backoffice"
	"cs-chat-simulator/internal/cache"
	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/internal/model"
	"cs-chat-simulator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Domains
	cacheUC cache.UseCase
	chatUC  chat.UseCase
	store   *backoffice.Store

	// Chat settings
	chatRatePerMin int
	defaultUserID  string
	useMockData    bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	CacheUC cache.UseCase
	ChatUC  chat.UseCase
	Store   *backoffice.Store

	ChatRatePerMin int
	DefaultUserID  string
	UseMockData    bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		cacheUC:        cfg.CacheUC,
		chatUC:         cfg.ChatUC,
		store:          cfg.Store,
		chatRatePerMin: cfg.ChatRatePerMin,
		defaultUserID:  cfg.DefaultUserID,
		useMockData:    cfg.UseMockData,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cacheUC == nil {
		return errors.New("cache usecase is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.store == nil {
		return errors.New("backoffice store is required")
	}
	return nil
}

// Run registers all routes and blocks serving HTTP until the listener fails.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
