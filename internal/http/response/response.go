package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 仅含提示消息的响应结构
type MessageBody struct {
	Message string `json:"message"`
}

// Success 200 响应，data 直接作为响应体
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 响应（仅消息）
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// Error 错误响应，状态码即 HTTP 状态
func Error(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: msg})
}

// NotFound 404响应
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// BadRequest 400响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}
