package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookie/internal/domain/favorite"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// favoriteRepository 收藏仓储实现(MySQL)
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏仓储
func NewFavoriteRepository(db *gorm.DB) favorite.Repository {
	return &favoriteRepository{db: db}
}

// Add 添加收藏
// (user_id, book_id)唯一索引 + DO NOTHING:重复收藏静默合并,保证幂等
func (r *favoriteRepository) Add(ctx context.Context, userID, bookID uint) error {
	model := &FavoriteModel{
		UserID: userID,
		BookID: bookID,
	}

	err := getDB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoNothing: true,
		}).
		Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "添加收藏失败")
	}
	return nil
}

// Remove 取消收藏,条目不存在时静默成功
func (r *favoriteRepository) Remove(ctx context.Context, userID, bookID uint) error {
	err := getDB(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&FavoriteModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "取消收藏失败")
	}
	return nil
}

// Exists 判断用户是否已收藏该书
func (r *favoriteRepository) Exists(ctx context.Context, userID, bookID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&FavoriteModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询收藏状态失败")
	}
	return count > 0, nil
}

// ListByUser 分页查询用户收藏
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*favorite.Favorite, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&FavoriteModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计收藏数失败")
	}

	var models []FavoriteModel
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询收藏列表失败")
	}

	favorites := make([]*favorite.Favorite, len(models))
	for i, m := range models {
		favorites[i] = &favorite.Favorite{
			ID:        m.ID,
			UserID:    m.UserID,
			BookID:    m.BookID,
			CreatedAt: m.CreatedAt,
		}
	}
	return favorites, total, nil
}
