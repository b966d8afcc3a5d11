package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookie/internal/domain/book"
)

// TestAnnotatedBooksUseCase 测试带统计的列表用例
func TestAnnotatedBooksUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("统计字段合并", func(t *testing.T) {
		svc := &fakeBookService{
			books: []*book.Book{
				testBook(1, "骆驼祥子", 2000, 0, now),
				testBook(2, "四世同堂", 3000, 0, now),
				testBook(3, "茶馆", 1500, 0, now),
			},
			total: 3,
		}
		rating := 4.5
		statsRepo := &fakeStatsRepo{
			stats: map[uint]*book.Stats{
				1: {AvgRating: &rating, SoldCount: 12, FavoritesCount: 3},
				2: {AvgRating: nil, SoldCount: 5, FavoritesCount: 0}, // 有销量但无评论
			},
		}
		uc := NewAnnotatedBooksUseCase(svc, statsRepo, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 1})
		require.NoError(t, err)
		require.Len(t, resp.List, 3)

		first := resp.List[0]
		require.NotNil(t, first.AvgRating)
		assert.Equal(t, 4.5, *first.AvgRating)
		assert.Equal(t, int64(12), first.SoldCount)
		assert.Equal(t, int64(3), first.FavoritesCount)

		second := resp.List[1]
		assert.Nil(t, second.AvgRating, "无评论时avg_rating为null,不是0")
		assert.Equal(t, int64(5), second.SoldCount)

		// 统计表里完全没有记录的图书,三项全为零值
		third := resp.List[2]
		assert.Nil(t, third.AvgRating)
		assert.Zero(t, third.SoldCount)
		assert.Zero(t, third.FavoritesCount)
	})

	t.Run("基础字段与普通列表一致", func(t *testing.T) {
		svc := &fakeBookService{
			books: []*book.Book{testBook(1, "骆驼祥子", 2000, 25, now)},
			total: 1,
		}
		uc := NewAnnotatedBooksUseCase(svc, &fakeStatsRepo{}, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 1})
		require.NoError(t, err)
		item := resp.List[0]
		assert.Equal(t, "老舍", item.Author)
		assert.Equal(t, int64(1500), item.DiscountedPrice, "定价引擎同样作用于带统计的列表")
	})

	t.Run("不带page参数时回显第一页", func(t *testing.T) {
		svc := &fakeBookService{books: []*book.Book{testBook(1, "骆驼祥子", 2000, 0, now)}, total: 1}
		uc := NewAnnotatedBooksUseCase(svc, &fakeStatsRepo{}, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, svc.lastFilter.Page, "查询按第一页执行")
		assert.Equal(t, 1, resp.Page, "回显页码必须与实际查询页一致")
	})

	t.Run("空页", func(t *testing.T) {
		svc := &fakeBookService{books: nil, total: 0}
		uc := NewAnnotatedBooksUseCase(svc, &fakeStatsRepo{}, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 5})
		require.NoError(t, err)
		assert.Empty(t, resp.List)
		assert.Zero(t, resp.Total)
	})
}
