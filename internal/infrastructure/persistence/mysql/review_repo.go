package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookie/internal/domain/review"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// reviewRepository 评论仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID: rv.BookID,
		UserID: rv.UserID,
		Text:   rv.Text,
		Rating: uint8(rv.Rating),
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	return nil
}

// ListByBookID 分页查询某本图书的评论(创建时间降序,ID降序兜底)
func (r *reviewRepository) ListByBookID(ctx context.Context, bookID uint, page, pageSize int) ([]*review.Review, int64, error) {
	var models []ReviewModel
	var total int64

	query := getDB(ctx, r.db).Model(&ReviewModel{}).Where("book_id = ?", bookID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").Order("id DESC").
		Limit(pageSize).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i, m := range models {
		reviews[i] = &review.Review{
			ID:        m.ID,
			BookID:    m.BookID,
			UserID:    m.UserID,
			Text:      m.Text,
			Rating:    review.Rating(m.Rating),
			CreatedAt: m.CreatedAt,
		}
	}
	return reviews, total, nil
}
