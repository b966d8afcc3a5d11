package review

import (
	"context"
)

// Repository 评论仓储接口
// 只有创建和按图书查询:评论没有编辑/删除路径
type Repository interface {
	// Create 创建评论
	Create(ctx context.Context, r *Review) error

	// ListByBookID 分页查询某本图书的评论(按创建时间降序)
	ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*Review, int64, error)
}
