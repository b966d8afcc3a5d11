package user

import (
	"time"
)

// User 用户实体（聚合根）
// 认证协作方:购物车/收藏/评论操作都以显式的userID参数接收当前用户,
// 本聚合只负责注册登录与身份信息
// 密码经bcrypt加密存储,实体不暴露明文
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	Phone     string // 联系电话(可空)
	Address   string // 收货地址(可空)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, nickname string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateProfile 更新个人信息（领域行为,空字符串表示不修改）
func (u *User) UpdateProfile(nickname, phone, address string) {
	if nickname != "" {
		u.Nickname = nickname
	}
	if phone != "" {
		u.Phone = phone
	}
	if address != "" {
		u.Address = address
	}
	u.UpdatedAt = time.Now()
}
