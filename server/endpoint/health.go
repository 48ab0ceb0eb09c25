// Package endpoint holds the handlers for the fixed status surface:
// /health, /api/status and /api/branches, plus the catch-all 404.
package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garrettc123/ai-business-automation-tree/automation"
)

// StatusFunc supplies the live system view rendered by the status
// endpoints.
type StatusFunc func() automation.Status

// Health returns the handler for GET /health. It always reports
// healthy; the embedded system object carries the live detail.
func Health(system StatusFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "AI Business Automation System operational",
			"system":  system(),
		})
	}
}

// Status returns the handler for GET /api/status: the system object
// alone, without the health wrapper.
func Status(system StatusFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, system())
	}
}
