package mysql

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookie/internal/domain/book"
)

// TestBookRepository_Delete 测试删除图书的级联事务
func TestBookRepository_Delete(t *testing.T) {
	ctx := context.Background()

	// 从属表的删除顺序与实现保持一致
	dependents := []string{"reviews", "order_items", "carts", "favorites", "promo_books"}

	t.Run("从属记录在同一事务内级联删除", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `books`").WillReturnResult(sqlmock.NewResult(0, 1))
		for _, table := range dependents {
			mock.ExpectExec("DELETE FROM `" + table + "` WHERE book_id = \\?").
				WillReturnResult(sqlmock.NewResult(0, 2))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, 7))
		assert.NoError(t, mock.ExpectationsWereMet(), "五张从属表都要删到且整体提交")
	})

	t.Run("图书不存在时回滚", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `books`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 404)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.NoError(t, mock.ExpectationsWereMet(), "主表没删到就不该碰从属表")
	})

	t.Run("级联删除失败整体回滚", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `books`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM `reviews` WHERE book_id = \\?").
			WillReturnError(errors.New("连接中断"))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 7)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet(), "任何一步失败必须回滚已删的主表记录")
	})
}
