package mysql

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookie/internal/domain/cart"
)

// TestCartRepository_AddItem 测试加入购物车的upsert语句
func TestCartRepository_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("重复加入走数量合并而不是第二行", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCartRepository(db)

		// 合并由数据库在一条语句内完成,语句必须携带upsert子句
		upsert := "INSERT INTO `carts` .* ON DUPLICATE KEY UPDATE .quantity.=quantity \\+ \\?"

		// 第一次加入:插入新行
		mock.ExpectBegin()
		mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
		require.NoError(t, repo.AddItem(ctx, 1, 10, 1))

		// 同一用户再加同一本书:同样的语句,唯一索引命中后数量累加
		mock.ExpectBegin()
		mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectCommit()
		require.NoError(t, repo.AddItem(ctx, 1, 10, 1))

		assert.NoError(t, mock.ExpectationsWereMet(), "两次加入都必须带合并子句")
	})

	t.Run("数量非法直接拒绝", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCartRepository(db)

		err := repo.AddItem(ctx, 1, 10, 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		assert.NoError(t, mock.ExpectationsWereMet(), "非法数量不应产生SQL")
	})
}
