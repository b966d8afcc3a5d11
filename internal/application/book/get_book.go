package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// GetBookUseCase 图书详情用例
// 详情比列表多:描述、系列、促销活动、三项统计
type GetBookUseCase struct {
	bookService book.Service
	statsRepo   book.StatsRepository
	authorRepo  author.Repository
	catalogRepo catalog.Repository
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(
	bookService book.Service,
	statsRepo book.StatsRepository,
	authorRepo author.Repository,
	catalogRepo catalog.Repository,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		statsRepo:   statsRepo,
		authorRepo:  authorRepo,
		catalogRepo: catalogRepo,
	}
}

// PromotionInfo 促销活动DTO
type PromotionInfo struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Active      bool   `json:"active"`
}

// BookDetailResponse 图书详情响应DTO
type BookDetailResponse struct {
	BookListItem
	Description    string          `json:"description"`
	Series         *string         `json:"series"` // 系列名称(不属于任何系列时为null)
	AvgRating      *float64        `json:"avg_rating"`
	SoldCount      int64           `json:"sold_count"`
	FavoritesCount int64           `json:"favorites_count"`
	Promotions     []PromotionInfo `json:"promotions"`
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetailResponse, error) {
	// 1. 查询图书
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 关联名称
	idx, err := loadNameIndex(ctx, []*book.Book{b}, uc.authorRepo, uc.catalogRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &BookDetailResponse{
		BookListItem: toListItem(b, idx, now),
		Description:  b.Description,
	}

	// 3. 系列(可空外键)
	if b.SeriesID != nil {
		series, err := uc.catalogRepo.FindSeriesByID(ctx, *b.SeriesID)
		if err == nil {
			resp.Series = &series.Name
		}
		// 系列查不到时保持null,不阻塞详情展示
	}

	// 4. 三项统计(同一快照)
	stats, err := uc.statsRepo.StatsByBookID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.AvgRating = stats.AvgRating
	resp.SoldCount = stats.SoldCount
	resp.FavoritesCount = stats.FavoritesCount

	// 5. 促销活动
	promotions, err := uc.catalogRepo.PromotionsByBookID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Promotions = make([]PromotionInfo, len(promotions))
	for i, p := range promotions {
		resp.Promotions[i] = PromotionInfo{
			ID:          p.ID,
			Description: p.Description,
			Type:        p.Type,
			StartDate:   p.StartDate.Format("2006-01-02"),
			EndDate:     p.EndDate.Format("2006-01-02"),
			Active:      p.IsActive(now),
		}
	}

	return resp, nil
}
