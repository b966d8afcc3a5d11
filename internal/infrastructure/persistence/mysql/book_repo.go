package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookie/internal/domain/book"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.CreatedAt = b.CreatedAt // 上架时间以实体为准(种子数据会往回错开)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByIDs 批量查找图书
func (r *bookRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	result := make(map[uint]*book.Book, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []BookModel
	err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询图书失败")
	}

	for i := range models {
		result[models[i].ID] = toBookEntity(&models[i])
	}
	return result, nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = b.ID
	model.CreatedAt = b.CreatedAt // 上架时间不变,货架期折扣依赖它

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书并级联删除从属记录
// 评论、订单明细、购物车条目、收藏、促销关联与图书同生命周期,
// 全部在一个事务内删除,任何一步失败整体回滚
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}

		for _, m := range []interface{}{
			&ReviewModel{},
			&OrderItemModel{},
			&CartItemModel{},
			&FavoriteModel{},
			&PromoBookModel{},
		} {
			if err := tx.Where("book_id = ?", id).Delete(m).Error; err != nil {
				return apperrors.Wrap(err, "级联删除图书从属记录失败")
			}
		}

		return nil
	})
}

// List 按条件分页查询图书
// 查询条件全部可选,按AND组合;排序固定为价格升序+ID升序,
// 保证相同条件下重复请求的分页结果一致
func (r *bookRepository) List(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	// 价格区间(含边界)
	if filter.MinPrice != nil {
		query = query.Where("books.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("books.price <= ?", *filter.MaxPrice)
	}

	// 作者姓名子串(忽略大小写;JOIN在infrastructure层完成,domain不感知)
	if filter.Author != "" {
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("LOWER(authors.full_name) LIKE ?", "%"+toLowerPattern(filter.Author)+"%")
	}

	// 体裁名称子串(忽略大小写)
	if filter.Genre != "" {
		query = query.
			Joins("JOIN genres ON genres.id = books.genre_id").
			Where("LOWER(genres.name) LIKE ?", "%"+toLowerPattern(filter.Genre)+"%")
	}

	// 状态精确匹配
	if filter.Status != "" {
		query = query.Where("books.status = ?", string(filter.Status))
	}

	// 分类浏览
	if filter.CategoryID != 0 {
		query = query.Where("books.category_id = ?", filter.CategoryID)
	}

	// 查询总数(分页前)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 排序:价格升序,ID升序兜底
	query = query.Order("books.price ASC").Order("books.id ASC")

	// 分页:越界页码自然返回空列表,total仍然正确
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(filter.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// CountByAuthorIDs 批量统计每位作者名下的图书数量
func (r *bookRepository) CountByAuthorIDs(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}

	type row struct {
		AuthorID uint
		Cnt      int64
	}
	var rows []row

	err := getDB(ctx, r.db).Model(&BookModel{}).
		Select("author_id, COUNT(*) AS cnt").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计作者图书数量失败")
	}

	for _, r := range rows {
		counts[r.AuthorID] = r.Cnt
	}
	return counts, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		AuthorID:    model.AuthorID,
		GenreID:     model.GenreID,
		CategoryID:  model.CategoryID,
		SeriesID:    model.SeriesID,
		Year:        model.Year,
		ISBN:        model.ISBN,
		Price:       model.Price,
		Discount:    model.Discount,
		Description: model.Description,
		CoverURL:    model.CoverURL,
		Status:      book.Status(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		Title:       b.Title,
		AuthorID:    b.AuthorID,
		GenreID:     b.GenreID,
		CategoryID:  b.CategoryID,
		SeriesID:    b.SeriesID,
		Year:        b.Year,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Discount:    b.Discount,
		Description: b.Description,
		CoverURL:    b.CoverURL,
		Status:      string(b.Status),
	}
}
