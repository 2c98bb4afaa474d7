package service

import (
	"github.com/inkpost/internal/metrics"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/repository"
)

// TagService 标签业务服务
type TagService struct {
	repo     repository.TagRepository
	postRepo repository.PostRepository
}

// NewTagService 创建标签服务
func NewTagService(repo repository.TagRepository, postRepo repository.PostRepository) *TagService {
	return &TagService{repo: repo, postRepo: postRepo}
}

// TagPosts 标签及其关联文章
type TagPosts struct {
	Tag   models.Tag
	Posts []models.Post
}

// List 获取至少关联一篇文章的标签及文章数
func (s *TagService) List() (rows []models.TagCount, err error) {
	defer func() { metrics.IncrementTagOperation("list", err == nil) }()
	return s.repo.ListWithPostCount()
}

// GetByID 获取标签
func (s *TagService) GetByID(id uint) (tag *models.Tag, err error) {
	defer func() { metrics.IncrementTagOperation("get", err == nil) }()
	return s.getByID(id)
}

// ListPosts 获取带有该标签的文章，最新优先
func (s *TagService) ListPosts(id uint) (result *TagPosts, err error) {
	defer func() { metrics.IncrementTagOperation("list_posts", err == nil) }()

	tag, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.List(repository.PostListFilter{TagID: tag.ID})
	if err != nil {
		return nil, err
	}
	return &TagPosts{Tag: *tag, Posts: posts}, nil
}

func (s *TagService) getByID(id uint) (*models.Tag, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	return tag, nil
}
