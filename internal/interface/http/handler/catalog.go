package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/bookie/internal/application/catalog"
	"github.com/xiebiao/bookie/pkg/response"
)

// CatalogHandler 分类HTTP处理器
type CatalogHandler struct {
	listCategories *appcatalog.ListCategoriesUseCase
}

// NewCatalogHandler 创建分类处理器
func NewCatalogHandler(listCategories *appcatalog.ListCategoriesUseCase) *CatalogHandler {
	return &CatalogHandler{listCategories: listCategories}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  返回全部图书分类,配合图书列表的category_id参数做分类浏览
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]appcatalog.CategoryItem}
// @Router       /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategories.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
