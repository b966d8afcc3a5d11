package book

import (
	"context"
)

// DefaultPageSize 列表页固定每页10条(与原商城页面一致)
const DefaultPageSize = 10

// ListFilter 列表查询条件
// 所有条件均可选,多个条件按AND组合;零值/空值表示该维度不限
type ListFilter struct {
	MinPrice   *int64 // 最低价(分,含)
	MaxPrice   *int64 // 最高价(分,含)
	Author     string // 作者姓名子串(忽略大小写)
	Genre      string // 体裁名称子串(忽略大小写)
	Status     Status // 状态精确匹配(空表示不限)
	CategoryID uint   // 分类浏览(0表示不限)
	Page       int    // 页码(从1开始)
	PageSize   int    // 每页数量(0时取DefaultPageSize)
}

// Normalize 填充分页默认值
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

// Repository 图书仓储接口(依赖倒置:domain定义,infrastructure实现)
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindByIDs 批量查找(购物车/收藏列表一次取齐,避免N+1)
	// 返回map中缺失的ID表示图书已被删除
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,并级联删除其评论、订单明细、购物车条目、
	// 收藏记录和促销关联(单事务内完成)
	Delete(ctx context.Context, id uint) error

	// List 按条件分页查询
	// 排序固定:价格升序,ID升序兜底(保证相同条件下分页结果确定)
	// 超出范围的页码返回空列表和正确的total,不报错
	List(ctx context.Context, filter ListFilter) ([]*Book, int64, error)

	// CountByAuthorIDs 批量统计每位作者名下的图书数量
	// 用于作者列表API的books_count字段
	CountByAuthorIDs(ctx context.Context, authorIDs []uint) (map[uint]int64, error)
}

// StatsRepository 图书统计仓储接口(聚合引擎的数据侧)
// 同一次调用内的三项统计必须来自同一个一致性快照
// (实现上在一个只读事务内分别聚合三张关联表)
type StatsRepository interface {
	// StatsByBookID 单本图书的统计
	StatsByBookID(ctx context.Context, bookID uint) (*Stats, error)

	// StatsByBookIDs 批量统计(列表页一次取齐,避免N+1)
	// 返回map中缺失的bookID表示三项统计全为零值
	StatsByBookIDs(ctx context.Context, bookIDs []uint) (map[uint]*Stats, error)
}
