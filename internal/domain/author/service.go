package author

import (
	"context"
	"unicode/utf8"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:姓名非空且不超过200字符
	CreateAuthor(ctx context.Context, fullName, bio, photoURL string) (*Author, error)

	// GetAuthorByID 根据ID获取作者
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthor 更新作者信息
	UpdateAuthor(ctx context.Context, id uint, fullName, bio, photoURL string) (*Author, error)

	// DeleteAuthor 删除作者(名下图书级联删除)
	DeleteAuthor(ctx context.Context, id uint) error

	// ListAuthors 分页查询作者列表
	ListAuthors(ctx context.Context, page, pageSize int) ([]*Author, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, fullName, bio, photoURL string) (*Author, error) {
	if !isValidName(fullName) {
		return nil, ErrInvalidName
	}

	a := NewAuthor(fullName, bio, photoURL)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAuthorByID 根据ID获取作者
func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者信息
func (s *service) UpdateAuthor(ctx context.Context, id uint, fullName, bio, photoURL string) (*Author, error) {
	if fullName != "" && !isValidName(fullName) {
		return nil, ErrInvalidName
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.UpdateInfo(fullName, bio, photoURL)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, page, pageSize int) ([]*Author, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.repo.List(ctx, page, pageSize)
}

// isValidName 校验作者姓名
func isValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= 200
}
