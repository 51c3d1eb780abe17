package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LivenessMessage is the plain-text body served for every GET. The form
// host probes connectivity with a bare GET before wiring the endpoint up.
const LivenessMessage = "Lark Base External Options API is running!"

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck handles GET on any path with a static liveness line.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}
