package provider

import (
	"context"
	"errors"

	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/repository"
	"github.com/inkpost/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository

	// Services
	PostService     *service.PostService
	CategoryService *service.CategoryService
	TagService      *service.TagService
}

// NewContainer 使用全局数据库连接初始化容器
func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.PostRepo = repository.NewPostRepository(c.DB)
	c.CategoryRepo = repository.NewCategoryRepository(c.DB)
	c.TagRepo = repository.NewTagRepository(c.DB)
}

func (c *Container) initServices() {
	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo, c.TagRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.PostRepo)
	c.TagService = service.NewTagService(c.TagRepo, c.PostRepo)
}

// Ping 检查数据库连接是否可用
func (c *Container) Ping(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
