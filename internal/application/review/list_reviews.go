package review

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/review"
	"github.com/xiebiao/bookie/internal/domain/user"
)

// ListReviewsUseCase 图书评论列表用例
// 按创建时间降序分页,附带评论人昵称(批量取齐)
type ListReviewsUseCase struct {
	reviewRepo  review.Repository
	bookService book.Service
	userRepo    user.Repository
}

// NewListReviewsUseCase 创建评论列表用例
func NewListReviewsUseCase(
	reviewRepo review.Repository,
	bookService book.Service,
	userRepo user.Repository,
) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo:  reviewRepo,
		bookService: bookService,
		userRepo:    userRepo,
	}
}

// ListReviewsResponse 评论列表响应DTO
type ListReviewsResponse struct {
	List     []ReviewItem `json:"list"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// Execute 执行评论列表查询
func (uc *ListReviewsUseCase) Execute(ctx context.Context, bookID uint, page, pageSize int) (*ListReviewsResponse, error) {
	// 图书存在性校验:不存在的图书返回404而不是空列表
	if _, err := uc.bookService.GetBookByID(ctx, bookID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = book.DefaultPageSize
	}

	reviews, total, err := uc.reviewRepo.ListByBookID(ctx, bookID, page, pageSize)
	if err != nil {
		return nil, err
	}

	// 评论人昵称批量取齐
	userIDs := make([]uint, 0, len(reviews))
	seen := make(map[uint]bool)
	for _, r := range reviews {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			userIDs = append(userIDs, r.UserID)
		}
	}
	users, err := uc.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewItem, len(reviews))
	for i, r := range reviews {
		item := ReviewItem{
			ID:        r.ID,
			BookID:    r.BookID,
			UserID:    r.UserID,
			Text:      r.Text,
			Rating:    int(r.Rating),
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if u, ok := users[r.UserID]; ok {
			item.Nickname = u.Nickname
		}
		list[i] = item
	}

	return &ListReviewsResponse{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
