package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
)

// BranchesFunc supplies the branch registry snapshot.
type BranchesFunc func() map[string]branch.Info

// Branches returns the handler for GET /api/branches.
func Branches(branches BranchesFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"branches": branches(),
		})
	}
}
