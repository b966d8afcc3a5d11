package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// AnnotatedBooksUseCase 带统计的图书列表用例
// 在普通列表之上附加三项聚合:平均评分、累计销量、收藏人数
// 设计说明:
// 1. 统计对整页图书批量取齐(一次GROUP BY),避免每本书三次聚合查询
// 2. 三项统计在仓储层同一只读事务内计算,数字来自同一快照
// 3. avg_rating为null表示"没有任何评论",与平均0分严格区分
type AnnotatedBooksUseCase struct {
	bookService book.Service
	statsRepo   book.StatsRepository
	authorRepo  author.Repository
	catalogRepo catalog.Repository
}

// NewAnnotatedBooksUseCase 创建带统计的列表查询用例
func NewAnnotatedBooksUseCase(
	bookService book.Service,
	statsRepo book.StatsRepository,
	authorRepo author.Repository,
	catalogRepo catalog.Repository,
) *AnnotatedBooksUseCase {
	return &AnnotatedBooksUseCase{
		bookService: bookService,
		statsRepo:   statsRepo,
		authorRepo:  authorRepo,
		catalogRepo: catalogRepo,
	}
}

// AnnotatedBookItem 带统计的列表项DTO
type AnnotatedBookItem struct {
	BookListItem
	AvgRating      *float64 `json:"avg_rating"` // 平均评分(无评论时为null)
	SoldCount      int64    `json:"sold_count"`
	FavoritesCount int64    `json:"favorites_count"`
}

// AnnotatedBooksResponse 带统计的列表响应DTO
type AnnotatedBooksResponse struct {
	List       []AnnotatedBookItem `json:"list"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// Execute 执行带统计的列表查询
// 过滤条件与普通列表完全一致
func (uc *AnnotatedBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*AnnotatedBooksResponse, error) {
	filter := book.ListFilter{
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Author:     req.Author,
		Genre:      req.Genre,
		Status:     book.Status(req.Status),
		CategoryID: req.CategoryID,
		Page:       req.Page,
		PageSize:   book.DefaultPageSize,
	}
	filter.Normalize()

	books, total, err := uc.bookService.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	idx, err := loadNameIndex(ctx, books, uc.authorRepo, uc.catalogRepo)
	if err != nil {
		return nil, err
	}

	// 整页图书的统计一次取齐
	bookIDs := make([]uint, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}
	statsMap, err := uc.statsRepo.StatsByBookIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	list := make([]AnnotatedBookItem, len(books))
	for i, b := range books {
		item := AnnotatedBookItem{
			BookListItem: toListItem(b, idx, now),
		}
		// map中缺失表示三项统计全为零值
		if s, ok := statsMap[b.ID]; ok {
			item.AvgRating = s.AvgRating
			item.SoldCount = s.SoldCount
			item.FavoritesCount = s.FavoritesCount
		}
		list[i] = item
	}

	return &AnnotatedBooksResponse{
		List:       list,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}
