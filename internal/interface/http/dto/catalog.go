package dto

// AuthorRequest HTTP作者写请求(录入与更新共用)
// 更新时空字段保持原值
type AuthorRequest struct {
	FullName string `json:"full_name" binding:"required,max=200" example:"刘慈欣"`
	Bio      string `json:"bio" binding:"omitempty,max=5000"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url,max=500"`
}

// UpdateAuthorRequest HTTP作者更新请求
// 与录入的区别:姓名可缺省(保持原值)
type UpdateAuthorRequest struct {
	FullName string `json:"full_name" binding:"omitempty,max=200"`
	Bio      string `json:"bio" binding:"omitempty,max=5000"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url,max=500"`
}

// AddReviewRequest HTTP发表评论请求
type AddReviewRequest struct {
	Text   string `json:"text" binding:"max=5000" example:"硬科幻的巅峰之作"`
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
}

// AddCartItemRequest HTTP加入购物车请求
// quantity缺省为1
type AddCartItemRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1,max=999" example:"2"`
}

// UpdateCartItemRequest HTTP修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999" example:"3"`
}

// PageQuery 通用分页查询参数
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"10"`
}
