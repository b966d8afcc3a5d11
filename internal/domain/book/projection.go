package book

// Stats 图书统计投影
// 设计说明:
// 1. 三项统计都是读取时从关联表实时计算的,不在Book上持久化
// 2. AvgRating使用指针:nil表示"没有任何评论",与"平均分为0"严格区分
// 3. 三项分别对各自关联表单独聚合,避免多表JOIN造成的重复计数
type Stats struct {
	AvgRating      *float64 // 平均评分(无评论时为nil)
	SoldCount      int64    // 累计售出数量(SUM(order_items.quantity),无订单时为0)
	FavoritesCount int64    // 收藏次数(无收藏时为0)
}

// Projection 图书读投影
// 实体字段 + 计算字段(实际售价、关联名称),只用于展示,不回写实体
type Projection struct {
	Book            *Book
	AuthorName      string
	GenreName       string
	CategoryName    string
	DiscountedPrice int64  // 实际售价(分)
	Stats           *Stats // 可选:仅带统计的路径填充
}
