package cart

// Item 购物车条目
// (user, book)对唯一:同一本书重复加入只会累加数量,不会产生新行
// (数据库层通过(user_id, book_id)唯一索引 + 原子upsert保证,
// 两个并发"加入购物车"请求不会各自插入一行)
type Item struct {
	ID       uint
	UserID   uint
	BookID   uint
	Quantity int // 数量,恒>=1
}

// NewItem 创建购物车条目(工厂方法)
func NewItem(userID, bookID uint, quantity int) (*Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Item{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}, nil
}
