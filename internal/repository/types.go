package repository

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	CategoryID uint
	TagID      uint
	Search     string
	OrderBy    string
}

const defaultPostOrder = "posts.created_at DESC, posts.id DESC"
