package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/cart"
)

// fakeCartRepo 预置条目的购物车仓储(测试用)
type fakeCartRepo struct {
	items []*cart.Item
}

func (f *fakeCartRepo) AddItem(ctx context.Context, userID, bookID uint, quantity int) error {
	panic("not used")
}
func (f *fakeCartRepo) RemoveItem(ctx context.Context, userID, bookID uint) error {
	panic("not used")
}
func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, userID, bookID uint, quantity int) error {
	panic("not used")
}
func (f *fakeCartRepo) ClearByUser(ctx context.Context, userID uint) error { panic("not used") }

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uint) ([]*cart.Item, error) {
	result := make([]*cart.Item, 0, len(f.items))
	for _, it := range f.items {
		if it.UserID == userID {
			result = append(result, it)
		}
	}
	return result, nil
}

// fakeBookRepo 只支持批量查找的图书仓储(测试用)
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { panic("not used") }
func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	panic("not used")
}
func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	panic("not used")
}
func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { panic("not used") }
func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error      { panic("not used") }
func (f *fakeBookRepo) List(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
	panic("not used")
}
func (f *fakeBookRepo) CountByAuthorIDs(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	panic("not used")
}

func (f *fakeBookRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	result := make(map[uint]*book.Book)
	for _, id := range ids {
		if b, ok := f.books[id]; ok {
			result[id] = b
		}
	}
	return result, nil
}

func cartBook(id uint, title string, price int64, discount int, createdAt time.Time) *book.Book {
	return &book.Book{
		ID:        id,
		Title:     title,
		Price:     price,
		Discount:  discount,
		Status:    book.StatusAvailable,
		CreatedAt: createdAt,
	}
}

// TestViewCartUseCase 测试购物车视图的金额计算
func TestViewCartUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("小计与总价按实际售价计算", func(t *testing.T) {
		cartRepo := &fakeCartRepo{items: []*cart.Item{
			{ID: 1, UserID: 7, BookID: 1, Quantity: 2},
			{ID: 2, UserID: 7, BookID: 2, Quantity: 1},
		}}
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{
			1: cartBook(1, "骆驼祥子", 2000, 25, now), // 实际售价1500
			2: cartBook(2, "四世同堂", 3000, 0, now.Add(-40*24*time.Hour)), // 货架期9折,2700
		}}
		uc := NewViewCartUseCase(cartRepo, bookRepo)

		view, err := uc.Execute(ctx, 7)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)

		first := view.Items[0]
		assert.Equal(t, int64(2000), first.Price)
		assert.Equal(t, int64(1500), first.DiscountedPrice)
		assert.Equal(t, int64(3000), first.Subtotal, "1500×2")

		second := view.Items[1]
		assert.Equal(t, int64(2700), second.Subtotal)

		assert.Equal(t, 3, view.TotalItems)
		assert.Equal(t, int64(5700), view.TotalPrice)
	})

	t.Run("已删除图书的条目不展示", func(t *testing.T) {
		cartRepo := &fakeCartRepo{items: []*cart.Item{
			{ID: 1, UserID: 7, BookID: 1, Quantity: 1},
			{ID: 2, UserID: 7, BookID: 99, Quantity: 3}, // 图书已不存在
		}}
		bookRepo := &fakeBookRepo{books: map[uint]*book.Book{
			1: cartBook(1, "骆驼祥子", 2000, 0, now),
		}}
		uc := NewViewCartUseCase(cartRepo, bookRepo)

		view, err := uc.Execute(ctx, 7)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 1, view.TotalItems, "缺失图书不计入数量")
		assert.Equal(t, int64(2000), view.TotalPrice)
	})

	t.Run("空购物车", func(t *testing.T) {
		uc := NewViewCartUseCase(&fakeCartRepo{}, &fakeBookRepo{})

		view, err := uc.Execute(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.TotalItems)
		assert.Zero(t, view.TotalPrice)
	})
}
