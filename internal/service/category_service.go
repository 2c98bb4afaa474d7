package service

import (
	"github.com/inkpost/internal/metrics"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo     repository.CategoryRepository
	postRepo repository.PostRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, postRepo repository.PostRepository) *CategoryService {
	return &CategoryService{repo: repo, postRepo: postRepo}
}

// CategoryPosts 分类及其下文章
type CategoryPosts struct {
	Category models.Category
	Posts    []models.Post
}

// List 获取分类列表及文章数，包含无文章的分类
func (s *CategoryService) List() (rows []models.CategoryCount, err error) {
	defer func() { metrics.IncrementCategoryOperation("list", err == nil) }()
	return s.repo.ListWithPostCount()
}

// GetByID 获取分类
func (s *CategoryService) GetByID(id uint) (category *models.Category, err error) {
	defer func() { metrics.IncrementCategoryOperation("get", err == nil) }()
	return s.getByID(id)
}

// ListPosts 获取分类下的文章，最新优先
func (s *CategoryService) ListPosts(id uint) (result *CategoryPosts, err error) {
	defer func() { metrics.IncrementCategoryOperation("list_posts", err == nil) }()

	category, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.List(repository.PostListFilter{CategoryID: category.ID})
	if err != nil {
		return nil, err
	}
	return &CategoryPosts{Category: *category, Posts: posts}, nil
}

func (s *CategoryService) getByID(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
