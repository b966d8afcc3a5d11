package order

import (
	"time"
)

// Status 订单状态
type Status string

const (
	StatusNew        Status = "new"        // 新建
	StatusProcessing Status = "processing" // 处理中
	StatusShipped    Status = "shipped"    // 已发货
	StatusCompleted  Status = "completed"  // 已完成
	StatusCancelled  Status = "cancelled"  // 已取消
)

// Order 订单实体(聚合根)
// 订单由管理端/履约流程维护,本服务只读它来做销量统计,
// 因此不实现支付、发货等状态机(非目标)
type Order struct {
	ID              uint
	UserID          uint
	Status          Status
	DeliveryAddress string
	PaymentMethod   string
	Items           []*Item
	CreatedAt       time.Time
}

// Item 订单明细
// Price是下单时刻的价格快照(分),创建后不可变:
// 图书后续调价不影响历史订单
type Item struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int   // 数量,恒>=1
	Price    int64 // 下单时单价快照(分)
}

// NewItem 创建订单明细(工厂方法)
// priceSnapshot应当是下单时刻定价引擎的输出
func NewItem(bookID uint, quantity int, priceSnapshot int64) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if priceSnapshot < 0 {
		return nil, ErrInvalidPrice
	}
	return &Item{
		BookID:   bookID,
		Quantity: quantity,
		Price:    priceSnapshot,
	}, nil
}

// Total 订单总金额(分)
func (o *Order) Total() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
