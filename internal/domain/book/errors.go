package book

import (
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidPrice 无效的标价
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "标价不能为负数")

	// ErrInvalidDiscount 无效的折扣
	ErrInvalidDiscount = apperrors.New(apperrors.ErrCodeInvalidParams, "折扣必须在0-100之间")

	// ErrInvalidStatus 无效的图书状态
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "图书状态不合法")

	// ErrInvalidYear 无效的出版年份
	ErrInvalidYear = apperrors.New(apperrors.ErrCodeInvalidParams, "出版年份不合法")
)
