package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Available lists every path the status surface serves, in the order
// they are reported on unknown-path responses.
var Available = []string{"/health", "/api/status", "/api/branches"}

// NotFound returns the catch-all handler for unknown paths.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "Not found",
			"path":                c.Request.URL.Path,
			"available_endpoints": Available,
		})
	}
}
