package core

import "github.com/gin-gonic/gin"

// respondError sends the unified failure payload {"success": false, "message": ...}.
// Every handler-level failure funnels through here.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
