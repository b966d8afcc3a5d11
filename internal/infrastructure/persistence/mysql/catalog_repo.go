package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookie/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// catalogRepository 分类体系仓储实现(MySQL)
// 分类/体裁/系列/促销都是简单实体,统一放在一个仓储里
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建分类体系仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

// CreateCategory 创建分类
func (r *catalogRepository) CreateCategory(ctx context.Context, c *catalog.Category) error {
	model := &CategoryModel{Name: c.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}
	c.ID = model.ID
	return nil
}

// FindCategoryByID 根据ID查找分类
func (r *catalogRepository) FindCategoryByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return &catalog.Category{ID: model.ID, Name: model.Name}, nil
}

// ListCategories 查询全部分类
func (r *catalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	var models []CategoryModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*catalog.Category, len(models))
	for i, m := range models {
		categories[i] = &catalog.Category{ID: m.ID, Name: m.Name}
	}
	return categories, nil
}

// FindCategoriesByIDs 批量查找分类
func (r *catalogRepository) FindCategoriesByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Category, error) {
	result := make(map[uint]*catalog.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []CategoryModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询分类失败")
	}
	for _, m := range models {
		result[m.ID] = &catalog.Category{ID: m.ID, Name: m.Name}
	}
	return result, nil
}

// CreateGenre 创建体裁
func (r *catalogRepository) CreateGenre(ctx context.Context, g *catalog.Genre) error {
	model := &GenreModel{Name: g.Name, Description: g.Description}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建体裁失败")
	}
	g.ID = model.ID
	return nil
}

// FindGenreByID 根据ID查找体裁
func (r *catalogRepository) FindGenreByID(ctx context.Context, id uint) (*catalog.Genre, error) {
	var model GenreModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询体裁失败")
	}
	return &catalog.Genre{ID: model.ID, Name: model.Name, Description: model.Description}, nil
}

// FindGenresByIDs 批量查找体裁
func (r *catalogRepository) FindGenresByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Genre, error) {
	result := make(map[uint]*catalog.Genre, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []GenreModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询体裁失败")
	}
	for _, m := range models {
		result[m.ID] = &catalog.Genre{ID: m.ID, Name: m.Name, Description: m.Description}
	}
	return result, nil
}

// CreateSeries 创建系列
func (r *catalogRepository) CreateSeries(ctx context.Context, s *catalog.Series) error {
	model := &SeriesModel{Name: s.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建系列失败")
	}
	s.ID = model.ID
	return nil
}

// FindSeriesByID 根据ID查找系列
func (r *catalogRepository) FindSeriesByID(ctx context.Context, id uint) (*catalog.Series, error) {
	var model SeriesModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrSeriesNotFound
		}
		return nil, apperrors.Wrap(err, "查询系列失败")
	}
	return &catalog.Series{ID: model.ID, Name: model.Name}, nil
}

// CreatePromotion 创建促销活动
func (r *catalogRepository) CreatePromotion(ctx context.Context, p *catalog.Promotion) error {
	model := &PromotionModel{
		Description: p.Description,
		Type:        p.Type,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建促销活动失败")
	}
	p.ID = model.ID
	return nil
}

// LinkPromotion 将图书加入促销活动
// (promotion_id, book_id)唯一索引 + DO NOTHING:重复关联合并为一条
func (r *catalogRepository) LinkPromotion(ctx context.Context, promotionID, bookID uint) error {
	model := &PromoBookModel{PromotionID: promotionID, BookID: bookID}

	err := getDB(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "关联促销活动失败")
	}
	return nil
}

// PromotionsByBookID 查询图书参与的促销活动
func (r *catalogRepository) PromotionsByBookID(ctx context.Context, bookID uint) ([]*catalog.Promotion, error) {
	var models []PromotionModel
	err := getDB(ctx, r.db).
		Joins("JOIN promo_books ON promo_books.promotion_id = promotions.id").
		Where("promo_books.book_id = ?", bookID).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书促销活动失败")
	}

	promotions := make([]*catalog.Promotion, len(models))
	for i, m := range models {
		promotions[i] = &catalog.Promotion{
			ID:          m.ID,
			Description: m.Description,
			Type:        m.Type,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
		}
	}
	return promotions, nil
}
