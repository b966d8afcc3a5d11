package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByIDs 批量查找(用于列表页拼装作者姓名,避免N+1)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Author, error)

	// Update 更新作者信息
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者(其名下图书由数据库级联删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询作者列表(按ID升序)
	List(ctx context.Context, page, pageSize int) ([]*Author, int64, error)
}
