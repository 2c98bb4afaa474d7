package public

import (
	"errors"
	"io"

	"github.com/inkpost/internal/http/response"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePostRequest 创建文章请求
type CreatePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

func (r CreatePostRequest) toInput() service.CreatePostInput {
	input := service.CreatePostInput{
		Title:   r.Title,
		Content: r.Content,
		Tags:    r.Tags,
	}
	if r.Category != nil {
		input.Category = *r.Category
	}
	return input
}

// UpdatePostRequest 更新文章请求，仅支持标题与正文
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListPosts 文章列表
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.PostService.List()
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, models.PostViews(posts))
}

// SearchPosts 搜索文章
func (h *Handler) SearchPosts(c *gin.Context) {
	posts, err := h.PostService.Search(c.Query("q"))
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, models.PostViews(posts))
}

// GetPost 文章详情
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := paramID(c, msgPostNotFound)
	if !ok {
		return
	}
	post, err := h.PostService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, post.View())
}

// CreatePost 创建文章
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(c, response.CodeBadRequest, service.ErrPostFieldsRequired.Message, nil)
			return
		}
		respondError(c, response.CodeBadRequest, "Invalid request body", nil)
		return
	}

	post, err := h.PostService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Created(c, post.View())
}

// UpdatePost 更新文章
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := paramID(c, msgPostNotFound)
	if !ok {
		return
	}

	// 请求体缺失或无法解析时按未提供数据处理，由服务层先判断文章是否存在
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = UpdatePostRequest{}
	}

	post, err := h.PostService.Update(id, service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Success(c, post.View())
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := paramID(c, msgPostNotFound)
	if !ok {
		return
	}
	if err := h.PostService.Delete(id); err != nil {
		respondWithMappedError(c, err, postErrorRules)
		return
	}
	response.Message(c, msgPostDeleted)
}
