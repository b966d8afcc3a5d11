package favorite

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/favorite"
)

// ListFavoritesUseCase 收藏列表用例
// 按收藏时间降序分页,附带图书信息和当前实际售价
type ListFavoritesUseCase struct {
	favoriteRepo favorite.Repository
	bookRepo     book.Repository
}

// NewListFavoritesUseCase 创建收藏列表用例
func NewListFavoritesUseCase(favoriteRepo favorite.Repository, bookRepo book.Repository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		bookRepo:     bookRepo,
	}
}

// FavoriteItem 收藏条目DTO
type FavoriteItem struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title"`
	CoverURL        string `json:"cover_url"`
	Price           int64  `json:"price"`
	DiscountedPrice int64  `json:"discounted_price"`
	Status          string `json:"status"`
	FavoritedAt     string `json:"favorited_at"`
}

// ListFavoritesResponse 收藏列表响应DTO
type ListFavoritesResponse struct {
	List     []FavoriteItem `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Execute 执行收藏列表查询
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListFavoritesResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = book.DefaultPageSize
	}

	favorites, total, err := uc.favoriteRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	bookIDs := make([]uint, len(favorites))
	for i, f := range favorites {
		bookIDs[i] = f.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	list := make([]FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		b, ok := books[f.BookID]
		if !ok {
			continue
		}
		list = append(list, FavoriteItem{
			BookID:          b.ID,
			Title:           b.Title,
			CoverURL:        b.CoverURL,
			Price:           b.Price,
			DiscountedPrice: b.DiscountedPrice(now),
			Status:          string(b.Status),
			FavoritedAt:     f.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &ListFavoritesResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
