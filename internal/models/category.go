package models

// Category 分类表
type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`                              // 主键
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 唯一名称
}

// TableName 指定表名
func (Category) TableName() string {
	return "category"
}

// Tag 标签表
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`                              // 主键
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 唯一名称
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tag"
}

// CategoryCount 分类及其文章数
type CategoryCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}

// TagCount 标签及其文章数
type TagCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}
