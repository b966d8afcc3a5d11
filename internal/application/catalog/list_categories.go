package catalog

import (
	"context"

	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// ListCategoriesUseCase 分类列表用例
// 分类数量很少且几乎不变,不做分页
type ListCategoriesUseCase struct {
	catalogRepo catalog.Repository
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(catalogRepo catalog.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalogRepo: catalogRepo}
}

// CategoryItem 分类DTO
type CategoryItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Execute 执行分类列表查询
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryItem, error) {
	categories, err := uc.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryItem, len(categories))
	for i, c := range categories {
		list[i] = CategoryItem{ID: c.ID, Name: c.Name}
	}
	return list, nil
}
