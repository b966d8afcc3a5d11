package review

import (
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrInvalidRating 评分越界
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在1-5之间")

	// ErrInvalidReview 评论缺少图书或用户
	ErrInvalidReview = apperrors.New(apperrors.ErrCodeInvalidParams, "评论必须关联图书和用户")

	// ErrTextTooLong 评论内容过长
	ErrTextTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能超过5000字符")
)
