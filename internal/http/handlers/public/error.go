package public

import (
	handlershared "github.com/inkpost/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func paramID(c *gin.Context, notFoundMsg string) (uint, bool) {
	return handlershared.ParamUint(c, "id", notFoundMsg)
}
