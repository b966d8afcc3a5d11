package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

// fakeUserRepository 内存版用户仓储(测试用)
type fakeUserRepository struct {
	nextID uint
	users  map[uint]*User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1, users: make(map[uint]*User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*User, error) {
	result := make(map[uint]*User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			cp := *u
			result[id] = &cp
		}
	}
	return result, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

// TestService_Register 测试注册的业务规则
func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeUserRepository())
		u, err := svc.Register(ctx, "reader@example.com", "passw0rd123", "书虫")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.NotEqual(t, "passw0rd123", u.Password, "密码必须加密存储")
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		svc := NewService(newFakeUserRepository())
		_, err := svc.Register(ctx, "not-an-email", "passw0rd123", "书虫")
		assert.Error(t, err)
	})

	t.Run("密码太弱", func(t *testing.T) {
		svc := NewService(newFakeUserRepository())

		_, err := svc.Register(ctx, "a@example.com", "short1", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "长度不足")

		_, err = svc.Register(ctx, "a@example.com", "onlyletters", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "缺少数字")

		_, err = svc.Register(ctx, "a@example.com", "12345678", "书虫")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "缺少字母")
	})

	t.Run("邮箱重复", func(t *testing.T) {
		svc := NewService(newFakeUserRepository())
		_, err := svc.Register(ctx, "dup@example.com", "passw0rd123", "书虫")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "dup@example.com", "passw0rd456", "另一只书虫")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("昵称长度", func(t *testing.T) {
		svc := NewService(newFakeUserRepository())
		_, err := svc.Register(ctx, "a@example.com", "passw0rd123", "x")
		assert.Error(t, err, "昵称至少2个字符")
	})
}

// TestService_Login 测试登录
func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserRepository())

	_, err := svc.Register(ctx, "reader@example.com", "passw0rd123", "书虫")
	require.NoError(t, err)

	t.Run("正确密码登录成功", func(t *testing.T) {
		u, err := svc.Login(ctx, "reader@example.com", "passw0rd123")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", u.Email)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "reader@example.com", "wrongpass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "passw0rd123")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
