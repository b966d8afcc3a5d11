package book

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
	"github.com/xiebiao/bookie/pkg/metrics"
)

// CreateBookUseCase 图书录入用例
// 设计说明:
// 1. 外键存在性(作者/体裁/分类)在这里校验,属于跨聚合的用例编排
// 2. 字段格式/范围校验(ISBN、价格、折扣、状态)由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
	authorRepo  author.Repository
	catalogRepo catalog.Repository
}

// NewCreateBookUseCase 创建录入用例
func NewCreateBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	catalogRepo catalog.Repository,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		authorRepo:  authorRepo,
		catalogRepo: catalogRepo,
	}
}

// CreateBookRequest 录入请求DTO
type CreateBookRequest struct {
	Title       string
	AuthorID    uint
	GenreID     uint
	CategoryID  uint
	SeriesID    *uint
	Year        int
	ISBN        string
	Price       int64 // 标价(分)
	Discount    int   // 百分比折扣(0-100)
	Description string
	CoverURL    string
	Status      string
}

// Execute 执行录入用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookListItem, error) {
	// 1. 外键存在性校验
	if _, err := uc.authorRepo.FindByID(ctx, req.AuthorID); err != nil {
		return nil, err
	}
	if _, err := uc.catalogRepo.FindGenreByID(ctx, req.GenreID); err != nil {
		return nil, err
	}
	if _, err := uc.catalogRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if req.SeriesID != nil {
		if _, err := uc.catalogRepo.FindSeriesByID(ctx, *req.SeriesID); err != nil {
			return nil, err
		}
	}

	// 2. 创建图书(领域服务负责格式校验与收录)
	b := book.NewBook(
		req.Title,
		req.AuthorID,
		req.GenreID,
		req.CategoryID,
		req.SeriesID,
		req.Year,
		req.ISBN,
		req.Price,
		req.Discount,
		req.Description,
		req.CoverURL,
		book.Status(req.Status),
	)
	created, err := uc.bookService.CreateBook(ctx, b)
	if err != nil {
		return nil, err
	}

	metrics.BooksCreatedTotal.Inc()

	// 3. 拼装响应
	idx, err := loadNameIndex(ctx, []*book.Book{created}, uc.authorRepo, uc.catalogRepo)
	if err != nil {
		return nil, err
	}
	item := toListItem(created, idx, created.CreatedAt)
	return &item, nil
}
