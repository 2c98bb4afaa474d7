package service

import (
	"fmt"
	"strings"

	"github.com/inkpost/internal/metrics"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/repository"

	"gorm.io/gorm"
)

// PostService 文章业务服务
type PostService struct {
	repo         repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository, categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *PostService {
	return &PostService{
		repo:         repo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// CreatePostInput 创建文章输入
type CreatePostInput struct {
	Title    string   `json:"title" validate:"required,notblank,max=120"`
	Content  string   `json:"content" validate:"required,notblank"`
	Category string   `json:"category" validate:"omitempty,max=50"`
	Tags     []string `json:"tags" validate:"dive,max=50"`
}

// UpdatePostInput 更新文章输入，nil 字段保持不变
type UpdatePostInput struct {
	Title   *string `json:"title" validate:"omitnil,notblank,max=120"`
	Content *string `json:"content" validate:"omitnil,notblank"`
}

// IsEmpty 是否未提供任何可更新字段
func (in UpdatePostInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil
}

// List 获取全部文章，最新优先
func (s *PostService) List() (posts []models.Post, err error) {
	defer func() { metrics.IncrementPostOperation("list", err == nil) }()
	return s.repo.List(repository.PostListFilter{})
}

// Get 获取文章详情
func (s *PostService) Get(id uint) (post *models.Post, err error) {
	defer func() { metrics.IncrementPostOperation("get", err == nil) }()
	return s.getByID(id)
}

// Search 按标题或正文子串搜索，空查询返回空列表
func (s *PostService) Search(query string) (posts []models.Post, err error) {
	defer func() { metrics.IncrementPostOperation("search", err == nil) }()
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Post{}, nil
	}
	return s.repo.List(repository.PostListFilter{Search: query})
}

// Create 创建文章，分类与标签不存在时自动创建
func (s *PostService) Create(input CreatePostInput) (post *models.Post, err error) {
	defer func() { metrics.IncrementPostOperation("create", err == nil) }()

	input.Category = strings.TrimSpace(input.Category)
	input.Tags = normalizeNames(input.Tags)
	if err := validateInput(input, ErrPostFieldsRequired); err != nil {
		return nil, err
	}

	var postID uint
	err = s.repo.Transaction(func(tx *gorm.DB) error {
		var categoryID *uint
		if input.Category != "" {
			category, err := s.categoryRepo.WithTx(tx).FirstOrCreateByName(input.Category)
			if err != nil {
				return fmt.Errorf("resolve category %q: %w", input.Category, err)
			}
			categoryID = &category.ID
		}

		tagRepo := s.tagRepo.WithTx(tx)
		tagIDs := make([]uint, 0, len(input.Tags))
		for _, name := range input.Tags {
			tag, err := tagRepo.FirstOrCreateByName(name)
			if err != nil {
				return fmt.Errorf("resolve tag %q: %w", name, err)
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		postRepo := s.repo.WithTx(tx)
		created := &models.Post{
			Title:      input.Title,
			Content:    input.Content,
			CategoryID: categoryID,
		}
		if err := postRepo.Create(created); err != nil {
			return err
		}
		if err := postRepo.AttachTags(created.ID, tagIDs); err != nil {
			return err
		}
		postID = created.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getByID(postID)
}

// Update 更新文章标题或正文，分类与标签保持不变
func (s *PostService) Update(id uint, input UpdatePostInput) (post *models.Post, err error) {
	defer func() { metrics.IncrementPostOperation("update", err == nil) }()

	exists, err := s.repo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if err := validateInput(input, nil); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": models.NowUTC(),
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.getByID(id)
}

// Delete 删除文章及其标签关联
func (s *PostService) Delete(id uint) (err error) {
	defer func() { metrics.IncrementPostOperation("delete", err == nil) }()

	exists, err := s.repo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *PostService) getByID(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}
