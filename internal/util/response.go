package util

import "github.com/gin-gonic/gin"

// Response is the data part of a success envelope.
type Response map[string]interface{}

// Success writes {"success": true, ...data}.
func Success(c *gin.Context, status int, data Response) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes {"success": false, "message": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}

// ErrorList writes {"success": false, "errors": [...]} for validation
// failures that carry more than one message.
func ErrorList(c *gin.Context, status int, msgs []string) {
	c.JSON(status, gin.H{
		"success": false,
		"errors":  msgs,
	})
}
