package catalog

import (
	"context"
)

// Repository 分类体系仓储接口
// 分类/体裁/系列由管理端维护,这里只提供图书展示路径需要的读写
type Repository interface {
	// CreateCategory 创建分类
	CreateCategory(ctx context.Context, c *Category) error

	// FindCategoryByID 根据ID查找分类
	FindCategoryByID(ctx context.Context, id uint) (*Category, error)

	// ListCategories 查询全部分类
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindCategoriesByIDs 批量查找分类(列表页拼装名称)
	FindCategoriesByIDs(ctx context.Context, ids []uint) (map[uint]*Category, error)

	// CreateGenre 创建体裁
	CreateGenre(ctx context.Context, g *Genre) error

	// FindGenreByID 根据ID查找体裁
	FindGenreByID(ctx context.Context, id uint) (*Genre, error)

	// FindGenresByIDs 批量查找体裁
	FindGenresByIDs(ctx context.Context, ids []uint) (map[uint]*Genre, error)

	// CreateSeries 创建系列
	CreateSeries(ctx context.Context, s *Series) error

	// FindSeriesByID 根据ID查找系列
	FindSeriesByID(ctx context.Context, id uint) (*Series, error)

	// CreatePromotion 创建促销活动
	CreatePromotion(ctx context.Context, p *Promotion) error

	// LinkPromotion 将图书加入促销活动(重复关联合并为一条)
	LinkPromotion(ctx context.Context, promotionID, bookID uint) error

	// PromotionsByBookID 查询图书参与的促销活动
	PromotionsByBookID(ctx context.Context, bookID uint) ([]*Promotion, error)
}
