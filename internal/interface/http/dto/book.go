package dto

import (
	"fmt"

	appbook "github.com/xiebiao/bookie/internal/application/book"
)

// ListBooksQuery HTTP图书列表查询参数
// 所有过滤条件可选,多个条件按AND组合;每页固定10条
type ListBooksQuery struct {
	MinPrice   *int64 `form:"min_price" binding:"omitempty,min=0" example:"1000"`  // 最低价(分,含)
	MaxPrice   *int64 `form:"max_price" binding:"omitempty,min=0" example:"10000"` // 最高价(分,含)
	Author     string `form:"author" binding:"omitempty,max=200" example:"刘慈欣"`    // 作者姓名子串
	Genre      string `form:"genre" binding:"omitempty,max=100" example:"科幻"`      // 体裁名称子串
	Status     string `form:"status" binding:"omitempty,oneof=available out_of_stock discontinued" example:"available"`
	CategoryID uint   `form:"category_id" binding:"omitempty" example:"1"`
	Page       int    `form:"page" binding:"omitempty,min=1" example:"1"`
}

// CreateBookRequest HTTP图书录入请求
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"三体"`
	AuthorID    uint   `json:"author_id" binding:"required" example:"1"`
	GenreID     uint   `json:"genre_id" binding:"required" example:"1"`
	CategoryID  uint   `json:"category_id" binding:"required" example:"1"`
	SeriesID    *uint  `json:"series_id" binding:"omitempty" example:"1"`
	Year        int    `json:"year" binding:"omitempty,min=1450" example:"2008"`
	ISBN        string `json:"isbn" binding:"required" example:"9787536692930"`
	Price       int64  `json:"price" binding:"min=0" example:"2300"`                // 标价(分),23.00元
	Discount    int    `json:"discount" binding:"omitempty,min=0,max=100" example:"15"` // 百分比折扣
	Description string `json:"description" binding:"max=5000"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Status      string `json:"status" binding:"omitempty,oneof=available out_of_stock discontinued" example:"available"`
}

// UpdateBookRequest HTTP图书更新请求
// 指针字段为null或缺省表示不修改
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"omitempty,max=200"`
	Description string  `json:"description" binding:"omitempty,max=5000"`
	CoverURL    string  `json:"cover_url" binding:"omitempty,url,max=500"`
	Price       *int64  `json:"price" binding:"omitempty,min=0"`
	Discount    *int    `json:"discount" binding:"omitempty,min=0,max=100"`
	Status      *string `json:"status" binding:"omitempty,oneof=available out_of_stock discontinued"`
}

// BookResponse HTTP图书响应
// 价格同时给出分和元两种表示,元字符串方便前端直接显示
type BookResponse struct {
	ID                  uint   `json:"id" example:"1"`
	Title               string `json:"title" example:"三体"`
	Author              string `json:"author" example:"刘慈欣"`
	Genre               string `json:"genre" example:"科幻"`
	Category            string `json:"category" example:"文学"`
	Year                int    `json:"year" example:"2008"`
	ISBN                string `json:"isbn" example:"9787536692930"`
	Price               int64  `json:"price" example:"2300"`
	PriceYuan           string `json:"price_yuan" example:"23.00"`
	Discount            int    `json:"discount" example:"15"`
	DiscountedPrice     int64  `json:"discounted_price" example:"1955"`
	DiscountedPriceYuan string `json:"discounted_price_yuan" example:"19.55"`
	Status              string `json:"status" example:"available"`
	CoverURL            string `json:"cover_url" example:"https://example.com/cover.jpg"`
	CreatedAt           string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// AnnotatedBookResponse 带统计的图书响应
type AnnotatedBookResponse struct {
	BookResponse
	AvgRating      *float64 `json:"avg_rating" example:"4.5"` // 无评论时为null
	SoldCount      int64    `json:"sold_count" example:"12"`
	FavoritesCount int64    `json:"favorites_count" example:"3"`
}

// FromBookItem 应用层列表项转HTTP响应
func FromBookItem(item appbook.BookListItem) BookResponse {
	return BookResponse{
		ID:                  item.ID,
		Title:               item.Title,
		Author:              item.Author,
		Genre:               item.Genre,
		Category:            item.Category,
		Year:                item.Year,
		ISBN:                item.ISBN,
		Price:               item.Price,
		PriceYuan:           FormatPriceYuan(item.Price),
		Discount:            item.Discount,
		DiscountedPrice:     item.DiscountedPrice,
		DiscountedPriceYuan: FormatPriceYuan(item.DiscountedPrice),
		Status:              item.Status,
		CoverURL:            item.CoverURL,
		CreatedAt:           item.CreatedAt,
	}
}

// FromAnnotatedItem 应用层带统计列表项转HTTP响应
func FromAnnotatedItem(item appbook.AnnotatedBookItem) AnnotatedBookResponse {
	return AnnotatedBookResponse{
		BookResponse:   FromBookItem(item.BookListItem),
		AvgRating:      item.AvgRating,
		SoldCount:      item.SoldCount,
		FavoritesCount: item.FavoritesCount,
	}
}

// BookDetailResponse HTTP图书详情响应
type BookDetailResponse struct {
	AnnotatedBookResponse
	Description string                   `json:"description"`
	Series      *string                  `json:"series"` // 不属于任何系列时为null
	Promotions  []appbook.PromotionInfo  `json:"promotions"`
}

// FromBookDetail 应用层详情转HTTP响应
func FromBookDetail(d *appbook.BookDetailResponse) *BookDetailResponse {
	return &BookDetailResponse{
		AnnotatedBookResponse: AnnotatedBookResponse{
			BookResponse:   FromBookItem(d.BookListItem),
			AvgRating:      d.AvgRating,
			SoldCount:      d.SoldCount,
			FavoritesCount: d.FavoritesCount,
		},
		Description: d.Description,
		Series:      d.Series,
		Promotions:  d.Promotions,
	}
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:1955分 → "19.55"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
