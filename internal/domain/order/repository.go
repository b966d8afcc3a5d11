package order

import (
	"context"
)

// Repository 订单仓储接口
// 订单由外部流程写入,本服务读它做销量统计;Create供种子数据
// 和后续履约模块使用
type Repository interface {
	// Create 创建订单(连同明细,单事务)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单(含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// ListByUser 分页查询用户订单(按创建时间降序)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
