package cart

import (
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrInvalidQuantity 数量必须为正
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrItemNotFound 购物车中没有这本书
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车中没有这本图书")
)
