package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层,具体实现在infrastructure/persistence/mysql层,
// domain层不依赖任何ORM框架,便于Mock测试
type Repository interface {
	// Create 创建用户
	// 邮箱已存在时返回errors.ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 不存在时返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户
	// 不存在时返回errors.ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByIDs 批量查找(评论列表拼装昵称,避免N+1)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
}
