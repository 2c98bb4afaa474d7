package repository

import (
	"errors"
	"strings"

	"github.com/inkpost/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Exists(id uint) (bool, error)
	Create(post *models.Post) error
	AttachTags(postID uint, tagIDs []uint) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) PostRepository
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPostRepository) WithTx(tx *gorm.DB) PostRepository {
	if tx == nil {
		return r
	}
	return &GormPostRepository{db: tx}
}

// Transaction 执行事务
func (r *GormPostRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// withRelations 显式预加载分类与标签
func withRelations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tag.id ASC")
		})
}

// List 文章列表
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, error) {
	var posts []models.Post
	query := withRelations(r.db.Model(&models.Post{}))

	if filter.CategoryID > 0 {
		query = query.Where("posts.category_id = ?", filter.CategoryID)
	}
	if filter.TagID > 0 {
		query = query.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", filter.TagID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildContainsCondition(r.db, []string{"posts.title", "posts.content"})
		query = query.Where(condition, repeatLikeArgs(containsPattern(search), argCount)...)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = defaultPostOrder
	}
	if err := query.Order(orderBy).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID 根据 ID 获取文章
func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := withRelations(r.db).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Exists 判断文章是否存在
func (r *GormPostRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建文章，关联由调用方显式写入
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Omit(clause.Associations).Create(post).Error
}

// AttachTags 写入文章标签关联，已存在的关联忽略
func (r *GormPostRepository) AttachTags(postID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.PostTag{PostID: postID, TagID: tagID})
	}
	return r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// UpdateFields 按字段更新文章
func (r *GormPostRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Post{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除文章及其标签关联
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}
