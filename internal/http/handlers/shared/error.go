package shared

import (
	"github.com/inkpost/internal/http/response"
	"github.com/inkpost/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InternalErrorMessage 未预期错误对外统一提示
const InternalErrorMessage = "Internal server error"

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.FullPath(),
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondInternalError 返回通用 500 响应，原始错误仅写入日志。
func RespondInternalError(c *gin.Context, err error) {
	RespondError(c, response.CodeInternal, InternalErrorMessage, err)
}
