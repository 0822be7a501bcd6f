// Package response writes the JSON envelopes of the API.
package response

import (
	"github.com/gin-gonic/gin"
)

// SendResponse writes {"status":"OK","msg":message} merged with payload.
func SendResponse(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{"status": "OK"}
	if message != "" {
		body["msg"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}
