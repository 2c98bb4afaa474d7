package public

import (
	"github.com/inkpost/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Ping 连通性检查
func (h *Handler) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "success",
		"message": "Pong! Backend is running successfully.",
	})
}
