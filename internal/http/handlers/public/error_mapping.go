package public

import (
	"errors"

	handlershared "github.com/inkpost/internal/http/handlers/shared"
	"github.com/inkpost/internal/http/response"
	"github.com/inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
// msg 为空时使用业务错误自身的描述。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			msg := rule.msg
			if msg == "" {
				msg = err.Error()
			}
			respondError(c, rule.code, msg, nil)
			return
		}
	}
	handlershared.RespondInternalError(c, err)
}

const (
	msgPostNotFound     = "Post not found"
	msgCategoryNotFound = "Category not found"
	msgTagNotFound      = "Tag not found"
	msgPostDeleted      = "Post deleted successfully"
)

var postErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: msgPostNotFound},
	{target: service.ErrValidation, code: response.CodeBadRequest},
}

var categoryErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: msgCategoryNotFound},
}

var tagErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: msgTagNotFound},
}
