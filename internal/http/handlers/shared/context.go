package shared

import (
	"strconv"
	"strings"

	"github.com/inkpost/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParamUint 读取路径中的正整数 ID，非法时直接返回 404。
func ParamUint(c *gin.Context, key, notFoundMsg string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(key))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeNotFound, notFoundMsg, nil)
		return 0, false
	}
	return uint(id), true
}
