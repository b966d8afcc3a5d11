package cart

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/cart"
	"github.com/xiebiao/bookie/pkg/metrics"
)

// AddToCartUseCase 加入购物车用例
// 设计说明:
// 1. 重复加入同一本书时数量累加,不产生重复条目
//    (仓储层用唯一索引+原子upsert实现,并发安全)
// 2. 加入前校验图书存在
type AddToCartUseCase struct {
	cartRepo    cart.Repository
	bookService book.Service
}

// NewAddToCartUseCase 创建加入购物车用例
func NewAddToCartUseCase(cartRepo cart.Repository, bookService book.Service) *AddToCartUseCase {
	return &AddToCartUseCase{
		cartRepo:    cartRepo,
		bookService: bookService,
	}
}

// Execute 执行加入购物车
func (uc *AddToCartUseCase) Execute(ctx context.Context, userID, bookID uint, quantity int) error {
	if _, err := uc.bookService.GetBookByID(ctx, bookID); err != nil {
		return err
	}

	if err := uc.cartRepo.AddItem(ctx, userID, bookID, quantity); err != nil {
		return err
	}

	metrics.CartAddsTotal.Inc()
	return nil
}

// RemoveFromCartUseCase 从购物车移除用例
// 整条移除:不做数量递减
type RemoveFromCartUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveFromCartUseCase 创建移除用例
func NewRemoveFromCartUseCase(cartRepo cart.Repository) *RemoveFromCartUseCase {
	return &RemoveFromCartUseCase{cartRepo: cartRepo}
}

// Execute 执行移除
func (uc *RemoveFromCartUseCase) Execute(ctx context.Context, userID, bookID uint) error {
	return uc.cartRepo.RemoveItem(ctx, userID, bookID)
}

// UpdateCartQuantityUseCase 修改购物车数量用例
type UpdateCartQuantityUseCase struct {
	cartRepo cart.Repository
}

// NewUpdateCartQuantityUseCase 创建修改数量用例
func NewUpdateCartQuantityUseCase(cartRepo cart.Repository) *UpdateCartQuantityUseCase {
	return &UpdateCartQuantityUseCase{cartRepo: cartRepo}
}

// Execute 执行修改数量(直接设置,不是增量)
func (uc *UpdateCartQuantityUseCase) Execute(ctx context.Context, userID, bookID uint, quantity int) error {
	return uc.cartRepo.UpdateQuantity(ctx, userID, bookID, quantity)
}
