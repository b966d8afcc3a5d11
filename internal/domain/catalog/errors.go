package catalog

import (
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// 分类体系领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrGenreNotFound 体裁不存在
	ErrGenreNotFound = apperrors.New(apperrors.ErrCodeGenreNotFound, "体裁不存在")

	// ErrSeriesNotFound 系列不存在
	ErrSeriesNotFound = apperrors.New(apperrors.ErrCodeNotFound, "系列不存在")

	// ErrPromotionNotFound 促销活动不存在
	ErrPromotionNotFound = apperrors.New(apperrors.ErrCodeNotFound, "促销活动不存在")
)
