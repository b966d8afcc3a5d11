package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// UpdateBookUseCase 图书更新用例
// 部分更新语义:请求中未携带的字段保持原值
type UpdateBookUseCase struct {
	bookService book.Service
	authorRepo  author.Repository
	catalogRepo catalog.Repository
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	catalogRepo catalog.Repository,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		authorRepo:  authorRepo,
		catalogRepo: catalogRepo,
	}
}

// UpdateBookRequest 更新请求DTO
// 指针字段为nil表示不修改
type UpdateBookRequest struct {
	ID          uint
	Title       string
	Description string
	CoverURL    string
	Price       *int64
	Discount    *int
	Status      *string
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookListItem, error) {
	patch := book.UpdatePatch{
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Price:       req.Price,
		Discount:    req.Discount,
	}
	if req.Status != nil {
		s := book.Status(*req.Status)
		patch.Status = &s
	}

	updated, err := uc.bookService.UpdateBook(ctx, req.ID, patch)
	if err != nil {
		return nil, err
	}

	idx, err := loadNameIndex(ctx, []*book.Book{updated}, uc.authorRepo, uc.catalogRepo)
	if err != nil {
		return nil, err
	}
	item := toListItem(updated, idx, time.Now())
	return &item, nil
}

// DeleteBookUseCase 图书删除用例
// 从属记录(评论/订单明细/购物车/收藏/促销关联)在仓储层单事务内级联删除
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.bookService.DeleteBook(ctx, id)
}
