package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genaizone/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	server *config.ServerConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(server *config.ServerConfig) *HealthHandler {
	return &HealthHandler{server: server}
}

// Liveness handles GET /healthz
// @Summary Liveness check
// @Description Report that the server is up, with its deployment label and environment
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Server is up"
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"deployment":  h.server.DeploymentLabel(),
		"environment": h.server.Environment,
	})
}
