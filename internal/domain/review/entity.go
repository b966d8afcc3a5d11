package review

import (
	"time"
	"unicode/utf8"
)

// Rating 评分值类型
// 设计说明:原系统的评分范围完全不校验,这里收敛为边界校验的值类型,
// 非法评分在构造时就被拒绝,实体内不可能出现越界值
type Rating uint8

// 评分范围
const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// NewRating 构造评分(唯一入口)
func NewRating(v int) (Rating, error) {
	if v < int(MinRating) || v > int(MaxRating) {
		return 0, ErrInvalidRating
	}
	return Rating(v), nil
}

// Review 评论实体
// 评论创建后不可修改、不可删除(没有编辑路径),CreatedAt是不可变的创建时间
type Review struct {
	ID        uint
	BookID    uint
	UserID    uint
	Text      string
	Rating    Rating
	CreatedAt time.Time
}

// NewReview 创建评论(工厂方法)
func NewReview(bookID, userID uint, text string, rating Rating) (*Review, error) {
	if bookID == 0 || userID == 0 {
		return nil, ErrInvalidReview
	}
	if utf8.RuneCountInString(text) > 5000 {
		return nil, ErrTextTooLong
	}
	return &Review{
		BookID:    bookID,
		UserID:    userID,
		Text:      text,
		Rating:    rating,
		CreatedAt: time.Now(),
	}, nil
}
