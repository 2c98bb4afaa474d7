package repository

import (
	"errors"

	"github.com/inkpost/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问接口
type TagRepository interface {
	ListWithPostCount() ([]models.TagCount, error)
	GetByID(id uint) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	FirstOrCreateByName(name string) (*models.Tag, error)
	WithTx(tx *gorm.DB) TagRepository
}

// GormTagRepository GORM 实现
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTagRepository) WithTx(tx *gorm.DB) TagRepository {
	if tx == nil {
		return r
	}
	return &GormTagRepository{db: tx}
}

// ListWithPostCount 标签列表（INNER JOIN，没有文章的标签不返回）
func (r *GormTagRepository) ListWithPostCount() ([]models.TagCount, error) {
	var rows []models.TagCount
	err := r.db.Table("tag").
		Select("tag.id AS id, tag.name AS name, COUNT(posts.id) AS post_count").
		Joins("JOIN post_tags ON post_tags.tag_id = tag.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Group("tag.id, tag.name").
		Order("tag.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID 根据 ID 获取标签
func (r *GormTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// GetByName 根据名称获取标签
func (r *GormTagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// FirstOrCreateByName 按名称获取标签，不存在则创建
func (r *GormTagRepository) FirstOrCreateByName(name string) (*models.Tag, error) {
	if err := insertIgnoreByName(r.db, &models.Tag{Name: name}); err != nil {
		return nil, err
	}
	tag, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errNameUpsertLost("tag", name)
	}
	return tag, nil
}
