package book

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// fakeBookService 预置一页结果的图书服务(测试用)
// 过滤逻辑在仓储层SQL中完成,有专门的测试,这里只关心用例的拼装行为
type fakeBookService struct {
	books      []*book.Book
	total      int64
	lastFilter book.ListFilter
}

func (f *fakeBookService) CreateBook(ctx context.Context, b *book.Book) (*book.Book, error) {
	panic("not used")
}

func (f *fakeBookService) GetBookByID(ctx context.Context, id uint) (*book.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) UpdateBook(ctx context.Context, id uint, patch book.UpdatePatch) (*book.Book, error) {
	panic("not used")
}

func (f *fakeBookService) DeleteBook(ctx context.Context, id uint) error {
	panic("not used")
}

func (f *fakeBookService) ListBooks(ctx context.Context, filter book.ListFilter) ([]*book.Book, int64, error) {
	// 原样记录收到的条件,用例层传什么这里就看到什么
	f.lastFilter = filter
	return f.books, f.total, nil
}

// fakeAuthorRepo 只支持批量查找的作者仓储(测试用)
type fakeAuthorRepo struct {
	authors map[uint]*author.Author
	calls   int // FindByIDs调用次数,验证批量取齐而非逐本点查
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) error { panic("not used") }
func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	panic("not used")
}
func (f *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) error { panic("not used") }
func (f *fakeAuthorRepo) Delete(ctx context.Context, id uint) error          { panic("not used") }
func (f *fakeAuthorRepo) List(ctx context.Context, page, pageSize int) ([]*author.Author, int64, error) {
	panic("not used")
}

func (f *fakeAuthorRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*author.Author, error) {
	f.calls++
	result := make(map[uint]*author.Author)
	for _, id := range ids {
		if a, ok := f.authors[id]; ok {
			result[id] = a
		}
	}
	return result, nil
}

// fakeCatalogRepo 只支持批量查找的分类体系仓储(测试用)
type fakeCatalogRepo struct {
	genres     map[uint]*catalog.Genre
	categories map[uint]*catalog.Category
}

func (f *fakeCatalogRepo) CreateCategory(ctx context.Context, c *catalog.Category) error {
	panic("not used")
}
func (f *fakeCatalogRepo) FindCategoryByID(ctx context.Context, id uint) (*catalog.Category, error) {
	panic("not used")
}
func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	panic("not used")
}
func (f *fakeCatalogRepo) CreateGenre(ctx context.Context, g *catalog.Genre) error {
	panic("not used")
}
func (f *fakeCatalogRepo) FindGenreByID(ctx context.Context, id uint) (*catalog.Genre, error) {
	panic("not used")
}
func (f *fakeCatalogRepo) CreateSeries(ctx context.Context, s *catalog.Series) error {
	panic("not used")
}
func (f *fakeCatalogRepo) FindSeriesByID(ctx context.Context, id uint) (*catalog.Series, error) {
	panic("not used")
}
func (f *fakeCatalogRepo) CreatePromotion(ctx context.Context, p *catalog.Promotion) error {
	panic("not used")
}
func (f *fakeCatalogRepo) LinkPromotion(ctx context.Context, promotionID, bookID uint) error {
	panic("not used")
}
func (f *fakeCatalogRepo) PromotionsByBookID(ctx context.Context, bookID uint) ([]*catalog.Promotion, error) {
	panic("not used")
}

func (f *fakeCatalogRepo) FindGenresByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Genre, error) {
	result := make(map[uint]*catalog.Genre)
	for _, id := range ids {
		if g, ok := f.genres[id]; ok {
			result[id] = g
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) FindCategoriesByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.Category, error) {
	result := make(map[uint]*catalog.Category)
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			result[id] = c
		}
	}
	return result, nil
}

// fakeStatsRepo 预置统计结果的统计仓储(测试用)
type fakeStatsRepo struct {
	stats map[uint]*book.Stats
}

func (f *fakeStatsRepo) StatsByBookID(ctx context.Context, bookID uint) (*book.Stats, error) {
	if s, ok := f.stats[bookID]; ok {
		return s, nil
	}
	return &book.Stats{}, nil
}

func (f *fakeStatsRepo) StatsByBookIDs(ctx context.Context, bookIDs []uint) (map[uint]*book.Stats, error) {
	result := make(map[uint]*book.Stats)
	for _, id := range bookIDs {
		if s, ok := f.stats[id]; ok {
			result[id] = s
		}
	}
	return result, nil
}

// testBook 组装一本测试图书
func testBook(id uint, title string, price int64, discount int, createdAt time.Time) *book.Book {
	return &book.Book{
		ID:         id,
		Title:      title,
		AuthorID:   1,
		GenreID:    1,
		CategoryID: 1,
		Year:       2021,
		ISBN:       "9787115000001",
		Price:      price,
		Discount:   discount,
		Status:     book.StatusAvailable,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func newTestAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors: map[uint]*author.Author{
			1: {ID: 1, FullName: "老舍"},
		},
	}
}

func newTestCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		genres:     map[uint]*catalog.Genre{1: {ID: 1, Name: "小说"}},
		categories: map[uint]*catalog.Category{1: {ID: 1, Name: "文学"}},
	}
}

// TestListBooksUseCase 测试图书列表用例的拼装逻辑
func TestListBooksUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("关联名称与实际售价拼装", func(t *testing.T) {
		svc := &fakeBookService{
			books: []*book.Book{
				testBook(1, "骆驼祥子", 2000, 25, now), // 新书,走百分比折扣
				testBook(2, "四世同堂", 3000, 0, now.Add(-40*24*time.Hour)), // 上架超30天,走货架期折扣
			},
			total: 2,
		}
		authorRepo := newTestAuthorRepo()
		uc := NewListBooksUseCase(svc, authorRepo, newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 1})
		require.NoError(t, err)
		require.Len(t, resp.List, 2)

		first := resp.List[0]
		assert.Equal(t, "骆驼祥子", first.Title)
		assert.Equal(t, "老舍", first.Author)
		assert.Equal(t, "小说", first.Genre)
		assert.Equal(t, "文学", first.Category)
		assert.Equal(t, int64(2000), first.Price)
		assert.Equal(t, int64(1500), first.DiscountedPrice, "25%折扣")

		second := resp.List[1]
		assert.Equal(t, int64(2700), second.DiscountedPrice, "货架期9折")

		assert.Equal(t, 1, authorRepo.calls, "整页作者应一次批量取齐")
	})

	t.Run("分页元信息", func(t *testing.T) {
		svc := &fakeBookService{books: nil, total: 23}
		uc := NewListBooksUseCase(svc, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(23), resp.Total)
		assert.Equal(t, 3, resp.Page)
		assert.Equal(t, book.DefaultPageSize, resp.PageSize)
		assert.Equal(t, 3, resp.TotalPages, "23条每页10条共3页")
		assert.Empty(t, resp.List)
	})

	t.Run("过滤条件透传", func(t *testing.T) {
		minPrice := int64(1000)
		svc := &fakeBookService{}
		uc := NewListBooksUseCase(svc, newTestAuthorRepo(), newTestCatalogRepo())

		_, err := uc.Execute(ctx, ListBooksRequest{
			MinPrice:   &minPrice,
			Author:     "老舍",
			Status:     "available",
			CategoryID: 2,
		})
		require.NoError(t, err)
		require.NotNil(t, svc.lastFilter.MinPrice)
		assert.Equal(t, int64(1000), *svc.lastFilter.MinPrice)
		assert.Equal(t, "老舍", svc.lastFilter.Author)
		assert.Equal(t, book.StatusAvailable, svc.lastFilter.Status)
		assert.Equal(t, uint(2), svc.lastFilter.CategoryID)
		assert.Equal(t, 1, svc.lastFilter.Page, "缺省页码归一化为1")
	})

	t.Run("不带page参数时回显第一页", func(t *testing.T) {
		svc := &fakeBookService{books: []*book.Book{testBook(1, "骆驼祥子", 2000, 0, now)}, total: 1}
		uc := NewListBooksUseCase(svc, newTestAuthorRepo(), newTestCatalogRepo())

		// 请求未携带page时绑定出来的是零值
		resp, err := uc.Execute(ctx, ListBooksRequest{})
		require.NoError(t, err)
		assert.Equal(t, 1, svc.lastFilter.Page, "查询按第一页执行")
		assert.Equal(t, 1, resp.Page, "回显页码必须与实际查询页一致")
		assert.Equal(t, book.DefaultPageSize, resp.PageSize)
	})

	t.Run("关联缺失时返回空名称", func(t *testing.T) {
		b := testBook(9, "无主之书", 1000, 0, now)
		b.AuthorID = 99 // 不存在的作者
		svc := &fakeBookService{books: []*book.Book{b}, total: 1}
		uc := NewListBooksUseCase(svc, newTestAuthorRepo(), newTestCatalogRepo())

		resp, err := uc.Execute(ctx, ListBooksRequest{Page: 1})
		require.NoError(t, err)
		assert.Equal(t, "", resp.List[0].Author, "关联缺失不报错,名称留空")
	})
}
