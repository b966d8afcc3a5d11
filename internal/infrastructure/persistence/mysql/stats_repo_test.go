package mysql

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatsRepository_StatsByBookID 测试单本统计的聚合语义
func TestStatsRepository_StatsByBookID(t *testing.T) {
	ctx := context.Background()

	t.Run("无评论时平均分为NULL而不是0", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT AVG\\(rating\\) FROM `reviews`").
			WillReturnRows(sqlmock.NewRows([]string{"AVG(rating)"}).AddRow(nil))
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\) FROM `order_items`").
			WillReturnRows(sqlmock.NewRows([]string{"sold"}).AddRow(5))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `favorites`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectCommit()

		stats, err := repo.StatsByBookID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, stats.AvgRating, "AVG对空集返回NULL,必须原样透出而不是补0")
		assert.Equal(t, int64(5), stats.SoldCount, "有销量无评论是正常组合")
		assert.Zero(t, stats.FavoritesCount)
		assert.NoError(t, mock.ExpectationsWereMet(), "三项聚合都在同一个事务内")
	})

	t.Run("有评论时透出平均分", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT AVG\\(rating\\) FROM `reviews`").
			WillReturnRows(sqlmock.NewRows([]string{"AVG(rating)"}).AddRow(4.0))
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(quantity\\), 0\\) FROM `order_items`").
			WillReturnRows(sqlmock.NewRows([]string{"sold"}).AddRow(0))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `favorites`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectCommit()

		stats, err := repo.StatsByBookID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, stats.AvgRating)
		assert.Equal(t, 4.0, *stats.AvgRating)
		assert.Equal(t, int64(3), stats.FavoritesCount)
	})
}
