package repository

import (
	"errors"

	"github.com/inkpost/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	ListWithPostCount() ([]models.CategoryCount, error)
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	FirstOrCreateByName(name string) (*models.Category, error)
	WithTx(tx *gorm.DB) CategoryRepository
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	if tx == nil {
		return r
	}
	return &GormCategoryRepository{db: tx}
}

// ListWithPostCount 分类列表（LEFT JOIN，含零文章分类）
func (r *GormCategoryRepository) ListWithPostCount() ([]models.CategoryCount, error) {
	var rows []models.CategoryCount
	err := r.db.Table("category").
		Select("category.id AS id, category.name AS name, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.category_id = category.id").
		Group("category.id, category.name").
		Order("category.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID 根据 ID 获取分类
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetByName 根据名称获取分类
func (r *GormCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// FirstOrCreateByName 按名称获取分类，不存在则创建
func (r *GormCategoryRepository) FirstOrCreateByName(name string) (*models.Category, error) {
	if err := insertIgnoreByName(r.db, &models.Category{Name: name}); err != nil {
		return nil, err
	}
	category, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errNameUpsertLost("category", name)
	}
	return category, nil
}
