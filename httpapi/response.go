package httpapi

import "github.com/gin-gonic/gin"

// genericServerError is the only text a store failure ever surfaces; internal
// error strings stay in the logs.
const genericServerError = "Internal server error"

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
