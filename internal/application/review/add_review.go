package review

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/review"
	"github.com/xiebiao/bookie/pkg/metrics"
)

// AddReviewUseCase 发表评论用例
// 设计说明:
// 1. 评分范围(1-5)由review.NewRating在构造时校验,非法值到不了仓储层
// 2. 评论只增不改:没有编辑和删除路径
// 3. 发表前校验图书存在,避免给已删除的图书留下孤儿评论
type AddReviewUseCase struct {
	reviewRepo  review.Repository
	bookService book.Service
}

// NewAddReviewUseCase 创建发表评论用例
func NewAddReviewUseCase(reviewRepo review.Repository, bookService book.Service) *AddReviewUseCase {
	return &AddReviewUseCase{
		reviewRepo:  reviewRepo,
		bookService: bookService,
	}
}

// AddReviewRequest 发表评论请求DTO
type AddReviewRequest struct {
	BookID uint
	UserID uint // 从认证中间件获取
	Text   string
	Rating int
}

// ReviewItem 评论DTO
type ReviewItem struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	UserID    uint   `json:"user_id"`
	Nickname  string `json:"nickname,omitempty"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行发表评论
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) (*ReviewItem, error) {
	// 1. 图书存在性校验
	if _, err := uc.bookService.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 2. 构造评论(评分边界校验在这一步)
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	r, err := review.NewReview(req.BookID, req.UserID, req.Text, rating)
	if err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.Inc()

	return &ReviewItem{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Text:      r.Text,
		Rating:    int(r.Rating),
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
