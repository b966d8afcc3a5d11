package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookie/internal/domain/order"
	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(连同明细,单事务)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	// GORM对关联切片的Create会在同一事务内插入orders和order_items
	err := getDB(ctx, r.db).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填数据库生成的字段
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	for i, it := range model.Items {
		o.Items[i].ID = it.ID
		o.Items[i].OrderID = it.OrderID
	}
	return nil
}

// FindByID 根据ID查找订单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// ListByUser 分页查询用户订单(按创建时间降序)
func (r *orderRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	db := getDB(ctx, r.db)

	var total int64
	if err := db.Model(&OrderModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计订单数失败")
	}

	var models []OrderModel
	err := db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// toOrderEntity 模型转领域实体
func toOrderEntity(m *OrderModel) *order.Order {
	items := make([]*order.Item, len(m.Items))
	for i, it := range m.Items {
		items[i] = &order.Item{
			ID:       it.ID,
			OrderID:  it.OrderID,
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}
	return &order.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Status:          order.Status(m.Status),
		DeliveryAddress: m.DeliveryAddress,
		PaymentMethod:   m.PaymentMethod,
		Items:           items,
		CreatedAt:       m.CreatedAt,
	}
}

// toOrderModel 领域实体转模型
func toOrderModel(o *order.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemModel{
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
	}
	return &OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		Items:           items,
	}
}
