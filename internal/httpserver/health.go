package httpserver

import (
	"github.com/gin-gonic/gin"

	"cs-chat-simulator/pkg/response"
)

const (
	HealthMessage = "From CS Chat Simulator With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "cs-chat-simulator"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports whether the broker can actually serve a turn: the
// generation backend is either a configured live provider or the mock.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	backend := "live"
	if srv.useMockData {
		backend = "mock"
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
		"version": HealthVersion,
		"backend": backend,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
		"version": HealthVersion,
	})
}
