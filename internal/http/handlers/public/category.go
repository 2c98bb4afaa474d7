package public

import (
	"github.com/inkpost/internal/http/response"
	"github.com/inkpost/internal/models"

	"github.com/gin-gonic/gin"
)

// CategoryPostsView 分类文章响应
type CategoryPostsView struct {
	Category models.Category   `json:"category"`
	Posts    []models.PostView `json:"posts"`
}

// ListCategories 分类列表（含文章数）
func (h *Handler) ListCategories(c *gin.Context) {
	rows, err := h.CategoryService.List()
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	if rows == nil {
		rows = []models.CategoryCount{}
	}
	response.Success(c, rows)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := paramID(c, msgCategoryNotFound)
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.Success(c, category)
}

// ListCategoryPosts 分类下的文章
func (h *Handler) ListCategoryPosts(c *gin.Context) {
	id, ok := paramID(c, msgCategoryNotFound)
	if !ok {
		return
	}
	result, err := h.CategoryService.ListPosts(id)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules)
		return
	}
	response.Success(c, CategoryPostsView{
		Category: result.Category,
		Posts:    models.PostViews(result.Posts),
	})
}
