package author

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
)

// ListAuthorsUseCase 作者列表用例
// 每位作者附带名下图书数量(books_count),一次GROUP BY批量统计
type ListAuthorsUseCase struct {
	authorService author.Service
	bookRepo      book.Repository
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorService author.Service, bookRepo book.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{
		authorService: authorService,
		bookRepo:      bookRepo,
	}
}

// AuthorItem 作者DTO
type AuthorItem struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	Bio        string `json:"bio"`
	PhotoURL   string `json:"photo_url"`
	BooksCount int64  `json:"books_count"`
	CreatedAt  string `json:"created_at"`
}

// ListAuthorsResponse 作者列表响应DTO
type ListAuthorsResponse struct {
	List     []AuthorItem `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// Execute 执行作者列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, page, pageSize int) (*ListAuthorsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = book.DefaultPageSize
	}

	authors, total, err := uc.authorService.ListAuthors(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	// 整页作者的图书数一次取齐
	authorIDs := make([]uint, len(authors))
	for i, a := range authors {
		authorIDs[i] = a.ID
	}
	counts, err := uc.bookRepo.CountByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	list := make([]AuthorItem, len(authors))
	for i, a := range authors {
		list[i] = toAuthorItem(a, counts[a.ID])
	}

	return &ListAuthorsResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetAuthorUseCase 作者详情用例
type GetAuthorUseCase struct {
	authorService author.Service
	bookRepo      book.Repository
}

// NewGetAuthorUseCase 创建作者详情用例
func NewGetAuthorUseCase(authorService author.Service, bookRepo book.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{
		authorService: authorService,
		bookRepo:      bookRepo,
	}
}

// Execute 执行作者详情查询
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorItem, error) {
	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := uc.bookRepo.CountByAuthorIDs(ctx, []uint{id})
	if err != nil {
		return nil, err
	}

	item := toAuthorItem(a, counts[id])
	return &item, nil
}

// toAuthorItem 实体转DTO
func toAuthorItem(a *author.Author, booksCount int64) AuthorItem {
	return AuthorItem{
		ID:         a.ID,
		FullName:   a.FullName,
		Bio:        a.Bio,
		PhotoURL:   a.PhotoURL,
		BooksCount: booksCount,
		CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
