package author

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/author"
)

// CreateAuthorUseCase 作者录入用例
type CreateAuthorUseCase struct {
	authorService author.Service
}

// NewCreateAuthorUseCase 创建作者录入用例
func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

// AuthorRequest 作者写请求DTO(录入与更新共用)
type AuthorRequest struct {
	FullName string
	Bio      string
	PhotoURL string
}

// Execute 执行作者录入
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req AuthorRequest) (*AuthorItem, error) {
	a, err := uc.authorService.CreateAuthor(ctx, req.FullName, req.Bio, req.PhotoURL)
	if err != nil {
		return nil, err
	}
	item := toAuthorItem(a, 0)
	return &item, nil
}

// UpdateAuthorUseCase 作者更新用例
type UpdateAuthorUseCase struct {
	authorService author.Service
}

// NewUpdateAuthorUseCase 创建作者更新用例
func NewUpdateAuthorUseCase(authorService author.Service) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorService: authorService}
}

// Execute 执行作者更新(空字符串字段保持原值)
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, id uint, req AuthorRequest) (*AuthorItem, error) {
	a, err := uc.authorService.UpdateAuthor(ctx, id, req.FullName, req.Bio, req.PhotoURL)
	if err != nil {
		return nil, err
	}
	item := toAuthorItem(a, 0)
	return &item, nil
}

// DeleteAuthorUseCase 作者删除用例
// 名下图书连同各自的从属记录一并级联删除
type DeleteAuthorUseCase struct {
	authorService author.Service
}

// NewDeleteAuthorUseCase 创建作者删除用例
func NewDeleteAuthorUseCase(authorService author.Service) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{authorService: authorService}
}

// Execute 执行作者删除
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	return uc.authorService.DeleteAuthor(ctx, id)
}
