package public

import (
	"github.com/inkpost/internal/http/response"
	"github.com/inkpost/internal/models"

	"github.com/gin-gonic/gin"
)

// TagPostsView 标签文章响应
type TagPostsView struct {
	Tag   models.Tag        `json:"tag"`
	Posts []models.PostView `json:"posts"`
}

// ListTags 标签列表（仅含有文章的标签）
func (h *Handler) ListTags(c *gin.Context) {
	rows, err := h.TagService.List()
	if err != nil {
		respondWithMappedError(c, err, tagErrorRules)
		return
	}
	if rows == nil {
		rows = []models.TagCount{}
	}
	response.Success(c, rows)
}

// GetTag 标签详情
func (h *Handler) GetTag(c *gin.Context) {
	id, ok := paramID(c, msgTagNotFound)
	if !ok {
		return
	}
	tag, err := h.TagService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, tagErrorRules)
		return
	}
	response.Success(c, tag)
}

// ListTagPosts 标签下的文章
func (h *Handler) ListTagPosts(c *gin.Context) {
	id, ok := paramID(c, msgTagNotFound)
	if !ok {
		return
	}
	result, err := h.TagService.ListPosts(id)
	if err != nil {
		respondWithMappedError(c, err, tagErrorRules)
		return
	}
	response.Success(c, TagPostsView{
		Tag:   result.Tag,
		Posts: models.PostViews(result.Posts),
	})
}
