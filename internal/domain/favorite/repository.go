package favorite

import (
	"context"
)

// Repository 收藏仓储接口
type Repository interface {
	// Add 添加收藏
	// 重复收藏(并发或重复点击)直接合并为已存在的记录,不报错
	Add(ctx context.Context, userID, bookID uint) error

	// Remove 取消收藏(不存在时静默成功)
	Remove(ctx context.Context, userID, bookID uint) error

	// Exists 是否已收藏
	Exists(ctx context.Context, userID, bookID uint) (bool, error)

	// ListByUser 查询用户的收藏列表(按收藏时间降序)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Favorite, int64, error)
}
