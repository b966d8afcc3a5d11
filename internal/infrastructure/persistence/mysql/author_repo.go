package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookie/internal/domain/author"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		FullName: a.FullName,
		Bio:      a.Bio,
		PhotoURL: a.PhotoURL,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// FindByIDs 批量查找作者
func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*author.Author, error) {
	result := make(map[uint]*author.Author, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []AuthorModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "批量查询作者失败")
	}

	for i := range models {
		result[models[i].ID] = toAuthorEntity(&models[i])
	}
	return result, nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		FullName:  a.FullName,
		Bio:       a.Bio,
		PhotoURL:  a.PhotoURL,
		CreatedAt: a.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者及其名下全部图书(图书的从属记录一并级联)
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&AuthorModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除作者失败")
		}
		if result.RowsAffected == 0 {
			return author.ErrAuthorNotFound
		}

		// 找出名下图书,逐级删除从属记录
		var bookIDs []uint
		if err := tx.Model(&BookModel{}).Where("author_id = ?", id).Pluck("id", &bookIDs).Error; err != nil {
			return apperrors.Wrap(err, "查询作者名下图书失败")
		}
		if len(bookIDs) == 0 {
			return nil
		}

		for _, m := range []interface{}{
			&ReviewModel{},
			&OrderItemModel{},
			&CartItemModel{},
			&FavoriteModel{},
			&PromoBookModel{},
		} {
			if err := tx.Where("book_id IN ?", bookIDs).Delete(m).Error; err != nil {
				return apperrors.Wrap(err, "级联删除图书从属记录失败")
			}
		}

		if err := tx.Where("id IN ?", bookIDs).Delete(&BookModel{}).Error; err != nil {
			return apperrors.Wrap(err, "级联删除作者图书失败")
		}

		return nil
	})
}

// List 分页查询作者列表
func (r *authorRepository) List(ctx context.Context, page, pageSize int) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := getDB(ctx, r.db).Model(&AuthorModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("id ASC").Limit(pageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		FullName:  model.FullName,
		Bio:       model.Bio,
		PhotoURL:  model.PhotoURL,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
