package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// AddItem 加入购物车(原子upsert)
	// 已存在相同(user, book)时累加数量;并发加入同一本书时
	// 由数据库唯一索引保证只会合并,不会出现重复行
	AddItem(ctx context.Context, userID, bookID uint, quantity int) error

	// RemoveItem 从购物车移除一本书(整条移除,不做数量递减)
	RemoveItem(ctx context.Context, userID, bookID uint) error

	// UpdateQuantity 直接设置数量(qty>=1)
	UpdateQuantity(ctx context.Context, userID, bookID uint, quantity int) error

	// ListByUser 查询用户购物车全部条目
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)

	// ClearByUser 清空用户购物车
	ClearByUser(ctx context.Context, userID uint) error
}
