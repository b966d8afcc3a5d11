package favorite

import (
	"time"
)

// Favorite 收藏记录
// 只有"在/不在"两种状态,没有数量;(user, book)对唯一
type Favorite struct {
	ID        uint
	UserID    uint
	BookID    uint
	CreatedAt time.Time
}

// NewFavorite 创建收藏记录
func NewFavorite(userID, bookID uint) *Favorite {
	return &Favorite{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now(),
	}
}
