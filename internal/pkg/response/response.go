package response

import "github.com/gin-gonic/gin"

// JSON writes a success payload as-is. The board client consumes bare
// arrays/objects, so there is no envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the wire-level error shape: {"error": "<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
