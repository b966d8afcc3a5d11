package favorite

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/favorite"
)

// ToggleFavoriteUseCase 收藏开关用例
// 已收藏则取消,未收藏则添加;返回操作后的收藏状态
// 并发重复点击由仓储层唯一索引+DO NOTHING兜底,不会报错也不会产生重复行
type ToggleFavoriteUseCase struct {
	favoriteRepo favorite.Repository
	bookService  book.Service
}

// NewToggleFavoriteUseCase 创建收藏开关用例
func NewToggleFavoriteUseCase(favoriteRepo favorite.Repository, bookService book.Service) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		bookService:  bookService,
	}
}

// ToggleFavoriteResponse 收藏开关响应DTO
type ToggleFavoriteResponse struct {
	BookID    uint `json:"book_id"`
	Favorited bool `json:"favorited"` // 操作后的状态
}

// Execute 执行收藏开关
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, userID, bookID uint) (*ToggleFavoriteResponse, error) {
	if _, err := uc.bookService.GetBookByID(ctx, bookID); err != nil {
		return nil, err
	}

	exists, err := uc.favoriteRepo.Exists(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := uc.favoriteRepo.Remove(ctx, userID, bookID); err != nil {
			return nil, err
		}
	} else {
		if err := uc.favoriteRepo.Add(ctx, userID, bookID); err != nil {
			return nil, err
		}
	}

	return &ToggleFavoriteResponse{
		BookID:    bookID,
		Favorited: !exists,
	}, nil
}
