package book

import (
	"time"
)

// Status 图书状态
// 与数据库中的枚举字符串一一对应
type Status string

const (
	StatusAvailable    Status = "available"    // 在售
	StatusOutOfStock   Status = "out_of_stock" // 缺货
	StatusDiscontinued Status = "discontinued" // 下架
)

// IsValid 校验状态值
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOutOfStock, StatusDiscontinued:
		return true
	}
	return false
}

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. Discount是百分比折扣(0-100整数),边界校验在创建/更新时完成
// 3. 不存储"当前售价":售价是纯函数,每次展示时重新计算(见pricing.go)
// 4. SeriesID可空:图书不一定属于某个系列
type Book struct {
	ID          uint
	Title       string // 书名
	AuthorID    uint   // 作者ID
	GenreID     uint   // 体裁ID
	CategoryID  uint   // 分类ID
	SeriesID    *uint  // 系列ID(可空)
	Year        int    // 出版年份
	ISBN        string // ISBN号(业务唯一标识)
	Price       int64  // 标价(单位:分,1元=100分)
	Discount    int    // 百分比折扣(0-100)
	Description string // 图书描述
	CoverURL    string // 封面图片URL
	Status      Status // 图书状态
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段格式/范围校验由Service负责,这里只做组装
func NewBook(title string, authorID, genreID, categoryID uint, seriesID *uint, year int, isbn string, price int64, discount int, description, coverURL string, status Status) *Book {
	now := time.Now()
	if status == "" {
		status = StatusAvailable
	}
	return &Book{
		Title:       title,
		AuthorID:    authorID,
		GenreID:     genreID,
		CategoryID:  categoryID,
		SeriesID:    seriesID,
		Year:        year,
		ISBN:        isbn,
		Price:       price,
		Discount:    discount,
		Description: description,
		CoverURL:    coverURL,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新标价(领域行为)
// 业务规则:标价不能为负数
func (b *Book) UpdatePrice(newPrice int64) error {
	if newPrice < 0 {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateDiscount 更新百分比折扣(领域行为)
// 业务规则:折扣必须在0-100之间
func (b *Book) UpdateDiscount(pct int) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidDiscount
	}
	b.Discount = pct
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateStatus 更新状态(领域行为)
func (b *Book) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息(空字符串表示不修改)
func (b *Book) UpdateInfo(title, description, coverURL string) {
	if title != "" {
		b.Title = title
	}
	if description != "" {
		b.Description = description
	}
	if coverURL != "" {
		b.CoverURL = coverURL
	}
	b.UpdatedAt = time.Now()
}

// IsAvailable 是否在售
func (b *Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}
