package book

import (
	"time"
)

// 定价规则参数
const (
	// ShelfAgeThreshold 货架期阈值:上架超过30天的图书自动参与货架期折扣
	ShelfAgeThreshold = 30 * 24 * time.Hour

	// ShelfAgeDiscountPct 货架期折扣(固定10%)
	ShelfAgeDiscountPct = 10
)

// DiscountedPrice 计算图书的实际售价(统一定价规则)
//
// 设计说明:
// 1. 售价是(标价, 百分比折扣, 上架时间, 当前时间)的纯函数,
//    不落库、无副作用,所有展示路径(列表/详情/购物车/API)统一走这里
// 2. 两条折扣规则取"折扣更大"的一条:
//    - 百分比规则: price - price*pct/100
//    - 货架期规则: 上架超过30天,固定9折;否则不打折
// 3. pct在[0,100]内时结果恒 <= 标价;越界的pct由边界(DTO绑定+领域服务)拒绝,
//    本函数按约定不做钳制
// 4. 标价缺失(<=0)按"无法计算折扣"处理,原样返回,不报错
//
// 金额运算全部使用整数分,除法向零截断,不引入浮点误差
func DiscountedPrice(price int64, discountPct int, createdAt, now time.Time) int64 {
	if price <= 0 {
		return price
	}

	// 百分比折扣规则
	byPercent := price - price*int64(discountPct)/100

	// 货架期折扣规则
	byShelfAge := price
	if now.Sub(createdAt) > ShelfAgeThreshold {
		byShelfAge = price - price*ShelfAgeDiscountPct/100
	}

	// 折扣更大者生效(即售价更低者)
	if byPercent < byShelfAge {
		return byPercent
	}
	return byShelfAge
}

// DiscountedPrice 当前时刻的实际售价
func (b *Book) DiscountedPrice(now time.Time) int64 {
	return DiscountedPrice(b.Price, b.Discount, b.CreatedAt, now)
}
