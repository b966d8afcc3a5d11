package book

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版图书仓储(测试用)
type fakeRepository struct {
	nextID uint
	books  map[uint]*Book
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, books: make(map[uint]*Book)}
}

func (f *fakeRepository) Create(ctx context.Context, b *Book) error {
	for _, existing := range f.books {
		if existing.ISBN == b.ISBN {
			return ErrISBNDuplicate
		}
	}
	b.ID = f.nextID
	f.nextID++
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepository) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrBookNotFound
}

func (f *fakeRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error) {
	result := make(map[uint]*Book)
	for _, id := range ids {
		if b, ok := f.books[id]; ok {
			cp := *b
			result[id] = &cp
		}
	}
	return result, nil
}

func (f *fakeRepository) Update(ctx context.Context, b *Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := f.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

// List 模拟仓储排序语义:价格升序,ID升序兜底
func (f *fakeRepository) List(ctx context.Context, filter ListFilter) ([]*Book, int64, error) {
	matched := make([]*Book, 0)
	for _, b := range f.books {
		if filter.MinPrice != nil && b.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && b.Price > *filter.MaxPrice {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.CategoryID != 0 && b.CategoryID != filter.CategoryID {
			continue
		}
		cp := *b
		matched = append(matched, &cp)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Price != matched[j].Price {
			return matched[i].Price < matched[j].Price
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []*Book{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeRepository) CountByAuthorIDs(ctx context.Context, authorIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64)
	for _, b := range f.books {
		result[b.AuthorID]++
	}
	return result, nil
}

func newTestBook(isbn string, price int64) *Book {
	return NewBook("测试图书", 1, 1, 1, nil, 2020, isbn, price, 0, "", "", StatusAvailable)
}

// TestService_CreateBook 测试图书创建的业务规则
func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.CreateBook(ctx, newTestBook("9787115428028", 5900))
		require.NoError(t, err)
		assert.NotZero(t, b.ID, "创建后应该回填ID")
	})

	t.Run("ISBN格式非法", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.CreateBook(ctx, newTestBook("12345", 5900))
		assert.ErrorIs(t, err, ErrInvalidISBN)
	})

	t.Run("允许带分隔符的ISBN", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.CreateBook(ctx, newTestBook("978-7-115-42802-8", 5900))
		assert.NoError(t, err)
	})

	t.Run("ISBN重复", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.CreateBook(ctx, newTestBook("9787115428028", 5900))
		require.NoError(t, err)

		_, err = svc.CreateBook(ctx, newTestBook("9787115428028", 6900))
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})

	t.Run("标价为负", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.CreateBook(ctx, newTestBook("9787115428028", -1))
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("折扣越界", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b := newTestBook("9787115428028", 5900)
		b.Discount = 101
		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrInvalidDiscount)

		b2 := newTestBook("9787115428029", 5900)
		b2.Discount = -1
		_, err = svc.CreateBook(ctx, b2)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("折扣边界值0和100合法", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b := newTestBook("9787115428028", 5900)
		b.Discount = 0
		_, err := svc.CreateBook(ctx, b)
		assert.NoError(t, err)

		b2 := newTestBook("9787115428030", 5900)
		b2.Discount = 100
		_, err = svc.CreateBook(ctx, b2)
		assert.NoError(t, err)
	})

	t.Run("状态非法", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b := newTestBook("9787115428028", 5900)
		b.Status = "unknown"
		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("出版年份非法", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b := newTestBook("9787115428028", 5900)
		b.Year = 1400
		_, err := svc.CreateBook(ctx, b)
		assert.ErrorIs(t, err, ErrInvalidYear)
	})
}

// TestService_UpdateBook 测试部分更新语义
func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	created, err := svc.CreateBook(ctx, newTestBook("9787115428028", 5900))
	require.NoError(t, err)

	t.Run("只改价格其他字段不动", func(t *testing.T) {
		newPrice := int64(4900)
		updated, err := svc.UpdateBook(ctx, created.ID, UpdatePatch{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, int64(4900), updated.Price)
		assert.Equal(t, "测试图书", updated.Title, "未携带的字段保持原值")
		assert.Equal(t, created.ISBN, updated.ISBN)
	})

	t.Run("折扣越界被拒绝", func(t *testing.T) {
		bad := 120
		_, err := svc.UpdateBook(ctx, created.ID, UpdatePatch{Discount: &bad})
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, 9999, UpdatePatch{})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

// TestService_ListBooks 测试列表查询的过滤、排序与分页
func TestService_ListBooks(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	prices := []int64{3000, 1000, 2000, 1000, 5000, 4000, 2500, 1500, 3500, 4500, 2800, 1200}
	for i, p := range prices {
		b := newTestBook(fakeISBN(i), p)
		_, err := svc.CreateBook(ctx, b)
		require.NoError(t, err)
	}

	t.Run("价格升序且每页10条", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, ListFilter{Page: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(12), total)
		assert.Len(t, books, DefaultPageSize)

		for i := 1; i < len(books); i++ {
			assert.GreaterOrEqual(t, books[i].Price, books[i-1].Price, "价格应该升序")
		}
	})

	t.Run("相同价格按ID升序兜底", func(t *testing.T) {
		books, _, err := svc.ListBooks(ctx, ListFilter{Page: 1})
		require.NoError(t, err)

		for i := 1; i < len(books); i++ {
			if books[i].Price == books[i-1].Price {
				assert.Greater(t, books[i].ID, books[i-1].ID, "同价图书按ID升序")
			}
		}
	})

	t.Run("第二页是剩余的2条", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, ListFilter{Page: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(12), total)
		assert.Len(t, books, 2)
	})

	t.Run("超出范围的页码返回空列表", func(t *testing.T) {
		books, total, err := svc.ListBooks(ctx, ListFilter{Page: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(12), total, "total仍然正确")
		assert.Empty(t, books, "空页不是错误")
	})

	t.Run("价格区间过滤", func(t *testing.T) {
		min, max := int64(1000), int64(2000)
		books, total, err := svc.ListBooks(ctx, ListFilter{MinPrice: &min, MaxPrice: &max, Page: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total, "区间含边界:1000/1000/1200/1500/2000")
		for _, b := range books {
			assert.GreaterOrEqual(t, b.Price, min)
			assert.LessOrEqual(t, b.Price, max)
		}
	})

	t.Run("页码默认值", func(t *testing.T) {
		books, _, err := svc.ListBooks(ctx, ListFilter{Page: 0})
		require.NoError(t, err)
		assert.Len(t, books, DefaultPageSize, "page=0按第1页处理")
	})
}

// fakeISBN 生成13位测试ISBN
func fakeISBN(i int) string {
	return fmt.Sprintf("97871150%05d", i)
}

// TestService_DeleteBook 测试删除
func TestService_DeleteBook(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	created, err := svc.CreateBook(ctx, newTestBook("9787115428028", 5900))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, created.ID))

	_, err = svc.GetBookByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, svc.DeleteBook(ctx, created.ID), ErrBookNotFound, "重复删除返回不存在")
}

// TestListFilter_Normalize 分页默认值
func TestListFilter_Normalize(t *testing.T) {
	f := ListFilter{}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)

	f = ListFilter{Page: 3, PageSize: 25}
	f.Normalize()
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 25, f.PageSize)
}
