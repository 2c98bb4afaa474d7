package public

import "github.com/inkpost/internal/provider"

// Handler 公开接口处理器入口
// 说明：博客接口无鉴权，文章、分类、标签均由该处理器提供。
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
