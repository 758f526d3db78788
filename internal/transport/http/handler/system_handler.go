package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	version string
	start   time.Time
}

func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{version: version, start: time.Now()}
}

// Root is the service banner.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the e-commerce API",
		"version":   h.version,
		"status":    "operational",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"uptime":    time.Since(h.start).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
