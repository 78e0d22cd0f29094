package httpserver

import (
	"tasklist-widget/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "tasklist-widget"
)

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// healthCheck reports liveness plus how many boards are in memory.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	stats := srv.boardUC.Stats(c.Request.Context())
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
		"live_boards": stats.LiveBoards,
	})
}

// readyCheck returns ready once routes are registered.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}
