package author

import (
	"time"
)

// Author 作者实体
// 一位作者名下有多本图书(books表通过author_id关联)
type Author struct {
	ID        uint
	FullName  string // 姓名
	Bio       string // 简介
	PhotoURL  string // 照片URL
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建作者(工厂方法)
func NewAuthor(fullName, bio, photoURL string) *Author {
	now := time.Now()
	return &Author{
		FullName:  fullName,
		Bio:       bio,
		PhotoURL:  photoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateInfo 更新作者信息(空字符串表示不修改)
func (a *Author) UpdateInfo(fullName, bio, photoURL string) {
	if fullName != "" {
		a.FullName = fullName
	}
	if bio != "" {
		a.Bio = bio
	}
	if photoURL != "" {
		a.PhotoURL = photoURL
	}
	a.UpdatedAt = time.Now()
}
