package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	common *CommonServices
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// Healthz reports process liveness.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports readiness: the service is ready once the jurisdiction
// registry has been assembled.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if h.common.Registry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "registry not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
