package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDiscountedPrice_PercentRule 测试百分比折扣规则
func TestDiscountedPrice_PercentRule(t *testing.T) {
	now := time.Now()
	createdAt := now.Add(-24 * time.Hour) // 上架1天,货架期规则不生效

	t.Run("无折扣原价销售", func(t *testing.T) {
		price := DiscountedPrice(50000, 0, createdAt, now)
		assert.Equal(t, int64(50000), price, "折扣为0时应该原价")
	})

	t.Run("15%折扣", func(t *testing.T) {
		price := DiscountedPrice(50000, 15, createdAt, now)
		assert.Equal(t, int64(42500), price, "500.00元打85折应该是425.00元")
	})

	t.Run("100%折扣售价为0", func(t *testing.T) {
		price := DiscountedPrice(50000, 100, createdAt, now)
		assert.Equal(t, int64(0), price)
	})

	t.Run("除法向零截断", func(t *testing.T) {
		// 999分打7%折: 999 - 999*7/100 = 999 - 69 = 930
		price := DiscountedPrice(999, 7, createdAt, now)
		assert.Equal(t, int64(930), price)
	})
}

// TestDiscountedPrice_ShelfAgeRule 测试货架期折扣规则
func TestDiscountedPrice_ShelfAgeRule(t *testing.T) {
	now := time.Now()

	t.Run("上架超过30天自动9折", func(t *testing.T) {
		createdAt := now.Add(-31 * 24 * time.Hour)
		price := DiscountedPrice(50000, 0, createdAt, now)
		assert.Equal(t, int64(45000), price, "500.00元货架期折扣后应该是450.00元")
	})

	t.Run("上架恰好30天不打折", func(t *testing.T) {
		createdAt := now.Add(-ShelfAgeThreshold)
		price := DiscountedPrice(50000, 0, createdAt, now)
		assert.Equal(t, int64(50000), price, "阈值是严格大于30天")
	})

	t.Run("新书不打折", func(t *testing.T) {
		createdAt := now.Add(-time.Hour)
		price := DiscountedPrice(50000, 0, createdAt, now)
		assert.Equal(t, int64(50000), price)
	})
}

// TestDiscountedPrice_LargerDiscountWins 两条规则同时满足时折扣更大者生效
func TestDiscountedPrice_LargerDiscountWins(t *testing.T) {
	now := time.Now()
	oldBook := now.Add(-60 * 24 * time.Hour) // 货架期规则生效

	t.Run("百分比折扣更大", func(t *testing.T) {
		// 百分比: 50000*80% = 40000;货架期: 45000
		price := DiscountedPrice(50000, 20, oldBook, now)
		assert.Equal(t, int64(40000), price, "20%折扣比货架期9折更优惠")
	})

	t.Run("货架期折扣更大", func(t *testing.T) {
		// 百分比: 50000*95% = 47500;货架期: 45000
		price := DiscountedPrice(50000, 5, oldBook, now)
		assert.Equal(t, int64(45000), price, "货架期9折比5%折扣更优惠")
	})

	t.Run("两条规则结果相同", func(t *testing.T) {
		price := DiscountedPrice(50000, 10, oldBook, now)
		assert.Equal(t, int64(45000), price)
	})
}

// TestDiscountedPrice_MissingPrice 标价缺失时原样返回
func TestDiscountedPrice_MissingPrice(t *testing.T) {
	now := time.Now()
	oldBook := now.Add(-60 * 24 * time.Hour)

	assert.Equal(t, int64(0), DiscountedPrice(0, 50, oldBook, now), "标价为0原样返回")
	assert.Equal(t, int64(-100), DiscountedPrice(-100, 50, oldBook, now), "负标价原样返回,不放大")
}

// TestDiscountedPrice_NeverAboveListPrice 合法折扣下售价不会超过标价
func TestDiscountedPrice_NeverAboveListPrice(t *testing.T) {
	now := time.Now()
	ages := []time.Duration{0, 10 * 24 * time.Hour, 31 * 24 * time.Hour, 365 * 24 * time.Hour}
	prices := []int64{1, 99, 1000, 50000, 9999999}

	for _, age := range ages {
		createdAt := now.Add(-age)
		for _, p := range prices {
			for pct := 0; pct <= 100; pct += 25 {
				got := DiscountedPrice(p, pct, createdAt, now)
				assert.LessOrEqual(t, got, p, "售价不能超过标价: price=%d pct=%d age=%v", p, pct, age)
				assert.GreaterOrEqual(t, got, int64(0), "合法折扣下售价不为负")
			}
		}
	}
}

// TestBook_DiscountedPrice 实体方法与纯函数一致
func TestBook_DiscountedPrice(t *testing.T) {
	now := time.Now()
	b := &Book{
		Price:     2300,
		Discount:  15,
		CreatedAt: now.Add(-40 * 24 * time.Hour),
	}

	assert.Equal(t, DiscountedPrice(2300, 15, b.CreatedAt, now), b.DiscountedPrice(now))
	assert.Equal(t, int64(1955), b.DiscountedPrice(now), "15%折扣大于货架期10%")
}
