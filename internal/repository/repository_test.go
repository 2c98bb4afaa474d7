package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/inkpost/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{NowFunc: models.NowUTC})
	require.NoError(t, err, "open sqlite failed")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, models.Migrate(db), "migrate failed")
	return db
}

func createTestPost(t *testing.T, repo *GormPostRepository, title, content string, categoryID *uint, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, repo.Create(post), "create post failed")
	return post
}

func TestFirstOrCreateByNameIsIdempotent(t *testing.T) {
	db := setupRepositoryTest(t)
	categories := NewCategoryRepository(db)
	tags := NewTagRepository(db)

	first, err := categories.FirstOrCreateByName("Tech")
	require.NoError(t, err)
	second, err := categories.FirstOrCreateByName("Tech")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	x1, err := tags.FirstOrCreateByName("x")
	require.NoError(t, err)
	x2, err := tags.FirstOrCreateByName("x")
	require.NoError(t, err)
	assert.Equal(t, x1.ID, x2.ID)

	var categoryCount, tagCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, categoryCount)
	assert.EqualValues(t, 1, tagCount)
}

func TestFirstOrCreateByNameIsCaseSensitive(t *testing.T) {
	db := setupRepositoryTest(t)
	tags := NewTagRepository(db)

	lower, err := tags.FirstOrCreateByName("go")
	require.NoError(t, err)
	upper, err := tags.FirstOrCreateByName("Go")
	require.NoError(t, err)
	assert.NotEqual(t, lower.ID, upper.ID)
}

func TestCategoryListKeepsEmptyCategories(t *testing.T) {
	db := setupRepositoryTest(t)
	categories := NewCategoryRepository(db)
	posts := NewPostRepository(db)

	tech, err := categories.FirstOrCreateByName("Tech")
	require.NoError(t, err)
	_, err = categories.FirstOrCreateByName("Life")
	require.NoError(t, err)

	now := models.NowUTC()
	createTestPost(t, posts, "a", "b", &tech.ID, now)
	createTestPost(t, posts, "c", "d", &tech.ID, now)

	rows, err := categories.ListWithPostCount()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.CategoryCount{ID: tech.ID, Name: "Tech", PostCount: 2}, rows[0])
	assert.Equal(t, "Life", rows[1].Name)
	assert.EqualValues(t, 0, rows[1].PostCount)
}

func TestTagListDropsUnusedTags(t *testing.T) {
	db := setupRepositoryTest(t)
	tags := NewTagRepository(db)
	posts := NewPostRepository(db)

	used, err := tags.FirstOrCreateByName("used")
	require.NoError(t, err)
	_, err = tags.FirstOrCreateByName("unused")
	require.NoError(t, err)

	post := createTestPost(t, posts, "a", "b", nil, models.NowUTC())
	require.NoError(t, posts.AttachTags(post.ID, []uint{used.ID}))

	rows, err := tags.ListWithPostCount()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.TagCount{ID: used.ID, Name: "used", PostCount: 1}, rows[0])
}

func TestPostListOrderAndFilters(t *testing.T) {
	db := setupRepositoryTest(t)
	categories := NewCategoryRepository(db)
	tags := NewTagRepository(db)
	posts := NewPostRepository(db)

	tech, err := categories.FirstOrCreateByName("Tech")
	require.NoError(t, err)
	golang, err := tags.FirstOrCreateByName("golang")
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	oldest := createTestPost(t, posts, "Hello world", "first", &tech.ID, base)
	middle := createTestPost(t, posts, "Second", "say HELLO again", nil, base.Add(time.Hour))
	newest := createTestPost(t, posts, "Third", "nothing here", &tech.ID, base.Add(2*time.Hour))
	require.NoError(t, posts.AttachTags(oldest.ID, []uint{golang.ID}))
	require.NoError(t, posts.AttachTags(newest.ID, []uint{golang.ID}))

	all, err := posts.List(PostListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{newest.ID, middle.ID, oldest.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})
	require.NotNil(t, all[0].Category)
	assert.Equal(t, "Tech", all[0].Category.Name)
	assert.Nil(t, all[1].Category)

	byCategory, err := posts.List(PostListFilter{CategoryID: tech.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byTag, err := posts.List(PostListFilter{TagID: golang.ID})
	require.NoError(t, err)
	require.Len(t, byTag, 2)
	assert.Equal(t, newest.ID, byTag[0].ID)
	require.Len(t, byTag[0].Tags, 1)
	assert.Equal(t, "golang", byTag[0].Tags[0].Name)

	found, err := posts.List(PostListFilter{Search: "hello"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, middle.ID, found[0].ID)
	assert.Equal(t, oldest.ID, found[1].ID)

	literal, err := posts.List(PostListFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, literal)
}

func TestPostDeleteRemovesTagLinks(t *testing.T) {
	db := setupRepositoryTest(t)
	tags := NewTagRepository(db)
	posts := NewPostRepository(db)

	tag, err := tags.FirstOrCreateByName("x")
	require.NoError(t, err)
	post := createTestPost(t, posts, "a", "b", nil, models.NowUTC())
	require.NoError(t, posts.AttachTags(post.ID, []uint{tag.ID}))

	require.NoError(t, posts.Delete(post.ID))

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var links int64
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&links).Error)
	assert.EqualValues(t, 0, links)

	remaining, err := tags.GetByID(tag.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestTagDeleteCascadesJoinRows(t *testing.T) {
	db := setupRepositoryTest(t)
	tags := NewTagRepository(db)
	posts := NewPostRepository(db)

	tag, err := tags.FirstOrCreateByName("x")
	require.NoError(t, err)
	post := createTestPost(t, posts, "a", "b", nil, models.NowUTC())
	require.NoError(t, posts.AttachTags(post.ID, []uint{tag.ID}))

	require.NoError(t, db.Delete(&models.Tag{}, tag.ID).Error)

	var links int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&links).Error)
	assert.EqualValues(t, 0, links)

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Tags)
}

func TestAttachTagsIgnoresExistingLinks(t *testing.T) {
	db := setupRepositoryTest(t)
	tags := NewTagRepository(db)
	posts := NewPostRepository(db)

	tag, err := tags.FirstOrCreateByName("x")
	require.NoError(t, err)
	post := createTestPost(t, posts, "a", "b", nil, models.NowUTC())
	require.NoError(t, posts.AttachTags(post.ID, []uint{tag.ID}))
	require.NoError(t, posts.AttachTags(post.ID, []uint{tag.ID}))

	var links int64
	require.NoError(t, db.Model(&models.PostTag{}).Count(&links).Error)
	assert.EqualValues(t, 1, links)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	db := setupRepositoryTest(t)

	post, err := NewPostRepository(db).GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, post)

	category, err := NewCategoryRepository(db).GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, category)

	tag, err := NewTagRepository(db).GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, tag)
}
