package handler

import (
	"github.com/gin-gonic/gin"

	appfavorite "github.com/xiebiao/bookie/internal/application/favorite"
	"github.com/xiebiao/bookie/internal/interface/http/dto"
	"github.com/xiebiao/bookie/internal/interface/http/middleware"
	"github.com/xiebiao/bookie/pkg/response"
)

// FavoriteHandler 收藏HTTP处理器
type FavoriteHandler struct {
	toggleFavorite *appfavorite.ToggleFavoriteUseCase
	listFavorites  *appfavorite.ListFavoritesUseCase
}

// NewFavoriteHandler 创建收藏处理器
func NewFavoriteHandler(
	toggleFavorite *appfavorite.ToggleFavoriteUseCase,
	listFavorites *appfavorite.ListFavoritesUseCase,
) *FavoriteHandler {
	return &FavoriteHandler{
		toggleFavorite: toggleFavorite,
		listFavorites:  listFavorites,
	}
}

// Toggle 收藏开关
// @Summary      收藏/取消收藏
// @Description  已收藏则取消,未收藏则添加;返回操作后的状态
// @Tags         收藏
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appfavorite.ToggleFavoriteResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/favorite [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.toggleFavorite.Execute(c.Request.Context(), userID, bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 收藏列表
// @Summary      收藏列表
// @Description  按收藏时间降序分页,附带图书当前实际售价
// @Tags         收藏
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.listFavorites.Execute(c.Request.Context(), userID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}
