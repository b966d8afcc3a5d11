// Package catalog 图书分类体系:分类、体裁、系列、促销活动
// 这些实体只有简单属性和生命周期,不单独建聚合,统一放在一个包里
package catalog

import (
	"time"
)

// Category 图书分类
type Category struct {
	ID   uint
	Name string
}

// Genre 图书体裁
type Genre struct {
	ID          uint
	Name        string
	Description string
}

// Series 图书系列
// 图书与系列是可空外键:系列删除时图书保留(series_id置空)
type Series struct {
	ID   uint
	Name string
}

// Promotion 促销活动
// 图书与促销通过promo_books显式关联(多对多)
type Promotion struct {
	ID          uint
	Description string
	Type        string    // 活动类型
	StartDate   time.Time // 开始日期
	EndDate     time.Time // 结束日期
}

// IsActive 活动在指定时刻是否生效
func (p *Promotion) IsActive(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// PromoBook 图书-促销关联
type PromoBook struct {
	ID          uint
	PromotionID uint
	BookID      uint
}
