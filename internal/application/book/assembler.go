package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// BookListItem 列表项DTO
// 价格字段是两份:price为标价,discounted_price为定价引擎算出的实际售价
type BookListItem struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	Category        string `json:"category"`
	Year            int    `json:"year"`
	ISBN            string `json:"isbn"`
	Price           int64  `json:"price"`            // 标价(分)
	Discount        int    `json:"discount"`         // 百分比折扣
	DiscountedPrice int64  `json:"discounted_price"` // 实际售价(分)
	Status          string `json:"status"`
	CoverURL        string `json:"cover_url"`
	CreatedAt       string `json:"created_at"`
}

// nameIndex 关联名称索引
// 列表页拼装作者/体裁/分类名称时先批量取齐,再逐本查表,
// 避免每本书三次点查的N+1问题
type nameIndex struct {
	authors    map[uint]*author.Author
	genres     map[uint]*catalog.Genre
	categories map[uint]*catalog.Category
}

// loadNameIndex 批量加载一批图书的关联名称
func loadNameIndex(ctx context.Context, books []*book.Book, authorRepo author.Repository, catalogRepo catalog.Repository) (*nameIndex, error) {
	authorIDs := make([]uint, 0, len(books))
	genreIDs := make([]uint, 0, len(books))
	categoryIDs := make([]uint, 0, len(books))
	seenAuthor := make(map[uint]bool)
	seenGenre := make(map[uint]bool)
	seenCategory := make(map[uint]bool)

	for _, b := range books {
		if !seenAuthor[b.AuthorID] {
			seenAuthor[b.AuthorID] = true
			authorIDs = append(authorIDs, b.AuthorID)
		}
		if !seenGenre[b.GenreID] {
			seenGenre[b.GenreID] = true
			genreIDs = append(genreIDs, b.GenreID)
		}
		if !seenCategory[b.CategoryID] {
			seenCategory[b.CategoryID] = true
			categoryIDs = append(categoryIDs, b.CategoryID)
		}
	}

	authors, err := authorRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	genres, err := catalogRepo.FindGenresByIDs(ctx, genreIDs)
	if err != nil {
		return nil, err
	}
	categories, err := catalogRepo.FindCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	return &nameIndex{
		authors:    authors,
		genres:     genres,
		categories: categories,
	}, nil
}

// authorName 作者姓名(关联缺失时返回空串,不报错)
func (idx *nameIndex) authorName(id uint) string {
	if a, ok := idx.authors[id]; ok {
		return a.FullName
	}
	return ""
}

func (idx *nameIndex) genreName(id uint) string {
	if g, ok := idx.genres[id]; ok {
		return g.Name
	}
	return ""
}

func (idx *nameIndex) categoryName(id uint) string {
	if c, ok := idx.categories[id]; ok {
		return c.Name
	}
	return ""
}

// toListItem 实体转列表项DTO
// now是本次请求的统一时钟:同一页内所有书的货架期折扣用同一时刻判定
func toListItem(b *book.Book, idx *nameIndex, now time.Time) BookListItem {
	return BookListItem{
		ID:              b.ID,
		Title:           b.Title,
		Author:          idx.authorName(b.AuthorID),
		Genre:           idx.genreName(b.GenreID),
		Category:        idx.categoryName(b.CategoryID),
		Year:            b.Year,
		ISBN:            b.ISBN,
		Price:           b.Price,
		Discount:        b.Discount,
		DiscountedPrice: b.DiscountedPrice(now),
		Status:          string(b.Status),
		CoverURL:        b.CoverURL,
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
