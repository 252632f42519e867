package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {success, data?, message?}.
// The panel historically had to unwrap several response shapes per module;
// these helpers are the single place the shape is defined.

func RespondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
