package models

import (
	"time"
)

// UncategorizedLabel 文章未设置分类时输出的分类名
const UncategorizedLabel = "uncategorized"

// Post 文章表
type Post struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                     // 主键
	Title      string    `gorm:"type:varchar(120);not null" json:"title"`                  // 标题
	Content    string    `gorm:"type:text;not null;default:''" json:"content"`             // 正文
	CategoryID *uint     `gorm:"index" json:"category_id"`                                 // 分类（可空）
	Category   *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`                    // 所属分类
	Tags       []Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"-"` // 标签
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                               // 更新时间
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// PostTag 文章与标签的关联表，外键约束由 Post.Tags 声明
type PostTag struct {
	PostID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName 指定表名
func (PostTag) TableName() string {
	return "post_tags"
}

// PostView 文章对外输出结构
type PostView struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// View 转换为输出结构，Category 与 Tags 需已预加载
func (p *Post) View() PostView {
	category := UncategorizedLabel
	if p.Category != nil && p.Category.Name != "" {
		category = p.Category.Name
	}
	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, tag.Name)
	}
	return PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  category,
		Tags:      tags,
		CreatedAt: FormatTimestamp(p.CreatedAt),
		UpdatedAt: FormatTimestamp(p.UpdatedAt),
	}
}

// PostViews 批量转换
func PostViews(posts []Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].View())
	}
	return views
}

// FormatTimestamp 输出 UTC ISO-8601 时间，以 Z 结尾
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
