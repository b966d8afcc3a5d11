package mysql

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/xiebiao/bookie/internal/domain/book"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// statsRepository 图书统计仓储实现(MySQL)
// 三项统计来自三张关联表:
//   - 平均评分   <- reviews.rating
//   - 累计销量   <- order_items.quantity
//   - 收藏人数   <- favorites
//
// 每次调用都在一个只读事务内完成三次聚合,保证同一响应里的
// 三项数字来自同一个一致性快照
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建图书统计仓储
func NewStatsRepository(db *gorm.DB) book.StatsRepository {
	return &statsRepository{db: db}
}

// StatsByBookID 单本图书的统计
func (r *statsRepository) StatsByBookID(ctx context.Context, bookID uint) (*book.Stats, error) {
	var stats *book.Stats

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		// AVG在没有评论时返回NULL,NullFloat64区分"无评论"和"平均0分"
		var avg sql.NullFloat64
		if err := tx.Model(&ReviewModel{}).
			Where("book_id = ?", bookID).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return err
		}

		var sold int64
		if err := tx.Model(&OrderItemModel{}).
			Where("book_id = ?", bookID).
			Select("COALESCE(SUM(quantity), 0)").
			Scan(&sold).Error; err != nil {
			return err
		}

		var favorites int64
		if err := tx.Model(&FavoriteModel{}).
			Where("book_id = ?", bookID).
			Count(&favorites).Error; err != nil {
			return err
		}

		stats = &book.Stats{
			SoldCount:      sold,
			FavoritesCount: favorites,
		}
		if avg.Valid {
			stats.AvgRating = &avg.Float64
		}
		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书统计失败")
	}

	return stats, nil
}

// StatsByBookIDs 批量统计(GROUP BY一次取齐,避免N+1)
func (r *statsRepository) StatsByBookIDs(ctx context.Context, bookIDs []uint) (map[uint]*book.Stats, error) {
	result := make(map[uint]*book.Stats, len(bookIDs))
	if len(bookIDs) == 0 {
		return result, nil
	}

	get := func(id uint) *book.Stats {
		s, ok := result[id]
		if !ok {
			s = &book.Stats{}
			result[id] = s
		}
		return s
	}

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var avgRows []struct {
			BookID uint
			Avg    sql.NullFloat64
		}
		if err := tx.Model(&ReviewModel{}).
			Where("book_id IN ?", bookIDs).
			Select("book_id, AVG(rating) AS avg").
			Group("book_id").
			Scan(&avgRows).Error; err != nil {
			return err
		}
		for _, row := range avgRows {
			if row.Avg.Valid {
				v := row.Avg.Float64
				get(row.BookID).AvgRating = &v
			}
		}

		var soldRows []struct {
			BookID uint
			Sold   int64
		}
		if err := tx.Model(&OrderItemModel{}).
			Where("book_id IN ?", bookIDs).
			Select("book_id, COALESCE(SUM(quantity), 0) AS sold").
			Group("book_id").
			Scan(&soldRows).Error; err != nil {
			return err
		}
		for _, row := range soldRows {
			get(row.BookID).SoldCount = row.Sold
		}

		var favRows []struct {
			BookID uint
			Cnt    int64
		}
		if err := tx.Model(&FavoriteModel{}).
			Where("book_id IN ?", bookIDs).
			Select("book_id, COUNT(*) AS cnt").
			Group("book_id").
			Scan(&favRows).Error; err != nil {
			return err
		}
		for _, row := range favRows {
			get(row.BookID).FavoritesCount = row.Cnt
		}

		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询图书统计失败")
	}

	return result, nil
}
