package cart

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/cart"
)

// ViewCartUseCase 购物车视图用例
// 设计说明:
// 1. 购物车不存价格快照,每次查看都用定价引擎重算实际售价:
//    图书调价/货架期折扣生效会立即反映在购物车里
// 2. 整车图书一次批量取齐;图书已被删除的条目不展示
type ViewCartUseCase struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewViewCartUseCase 创建购物车视图用例
func NewViewCartUseCase(cartRepo cart.Repository, bookRepo book.Repository) *ViewCartUseCase {
	return &ViewCartUseCase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// CartItemView 购物车条目DTO
type CartItemView struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title"`
	CoverURL        string `json:"cover_url"`
	Price           int64  `json:"price"`            // 标价(分)
	DiscountedPrice int64  `json:"discounted_price"` // 实际售价(分)
	Quantity        int    `json:"quantity"`
	Subtotal        int64  `json:"subtotal"` // 实际售价×数量(分)
}

// CartView 购物车响应DTO
type CartView struct {
	Items      []CartItemView `json:"items"`
	TotalItems int            `json:"total_items"` // 全部条目数量之和
	TotalPrice int64          `json:"total_price"` // 按实际售价计算的总价(分)
}

// Execute 执行购物车查询
func (uc *ViewCartUseCase) Execute(ctx context.Context, userID uint) (*CartView, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookIDs := make([]uint, len(items))
	for i, it := range items {
		bookIDs[i] = it.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	view := &CartView{Items: make([]CartItemView, 0, len(items))}
	for _, it := range items {
		b, ok := books[it.BookID]
		if !ok {
			// 图书已被删除,条目随级联删除消失,这里只是并发窗口的兜底
			continue
		}

		price := b.DiscountedPrice(now)
		subtotal := price * int64(it.Quantity)
		view.Items = append(view.Items, CartItemView{
			BookID:          b.ID,
			Title:           b.Title,
			CoverURL:        b.CoverURL,
			Price:           b.Price,
			DiscountedPrice: price,
			Quantity:        it.Quantity,
			Subtotal:        subtotal,
		})
		view.TotalItems += it.Quantity
		view.TotalPrice += subtotal
	}

	return view, nil
}
