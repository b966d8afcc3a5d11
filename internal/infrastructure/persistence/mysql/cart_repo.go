package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookie/internal/domain/cart"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// AddItem 加入购物车(原子upsert)
// 生成的SQL:
//
//	INSERT INTO carts (user_id, book_id, quantity, ...) VALUES (?, ?, ?, ...)
//	ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)
//
// (user_id, book_id)唯一索引保证并发加入同一本书时只会合并数量,
// 不可能出现两行;整个读改写在数据库内一条语句完成,没有检查-再插入的窗口
func (r *cartRepository) AddItem(ctx context.Context, userID, bookID uint, quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}

	model := &CartItemModel{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}

	err := getDB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).
		Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "加入购物车失败")
	}

	return nil
}

// RemoveItem 从购物车移除一本书
func (r *cartRepository) RemoveItem(ctx context.Context, userID, bookID uint) error {
	result := getDB(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&CartItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "移除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// UpdateQuantity 直接设置数量
func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, bookID uint, quantity int) error {
	if quantity < 1 {
		return cart.ErrInvalidQuantity
	}

	result := getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Update("quantity", quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车数量失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// ListByUser 查询用户购物车全部条目
func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]*cart.Item, error) {
	var models []CartItemModel
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	items := make([]*cart.Item, len(models))
	for i, m := range models {
		items[i] = &cart.Item{
			ID:       m.ID,
			UserID:   m.UserID,
			BookID:   m.BookID,
			Quantity: m.Quantity,
		}
	}
	return items, nil
}

// ClearByUser 清空用户购物车
func (r *cartRepository) ClearByUser(ctx context.Context, userID uint) error {
	err := getDB(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}
