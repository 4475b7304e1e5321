package helpers

import (
	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, data} on the
// happy path, {success, error} otherwise.

func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
