package controller

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应；code 为空时只返回 message
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	body := gin.H{"message": message}
	if code != "" {
		body["code"] = code
	}
	c.AbortWithStatusJSON(status, body)
}
