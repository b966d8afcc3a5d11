package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookie/internal/application/cart"
	"github.com/xiebiao/bookie/internal/interface/http/dto"
	"github.com/xiebiao/bookie/internal/interface/http/middleware"
	"github.com/xiebiao/bookie/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addToCart      *appcart.AddToCartUseCase
	removeFromCart *appcart.RemoveFromCartUseCase
	updateQuantity *appcart.UpdateCartQuantityUseCase
	viewCart       *appcart.ViewCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addToCart *appcart.AddToCartUseCase,
	removeFromCart *appcart.RemoveFromCartUseCase,
	updateQuantity *appcart.UpdateCartQuantityUseCase,
	viewCart *appcart.ViewCartUseCase,
) *CartHandler {
	return &CartHandler{
		addToCart:      addToCart,
		removeFromCart: removeFromCart,
		updateQuantity: updateQuantity,
		viewCart:       viewCart,
	}
}

// View 查看购物车
// @Summary      查看购物车
// @Description  返回全部条目的实际售价、小计和总价;价格每次查看实时计算
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=appcart.CartView}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.viewCart.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  重复加入同一本书时数量累加;quantity缺省为1
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        book_id path int true "图书ID"
// @Param        request body dto.AddCartItemRequest false "数量"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/cart/items/{book_id} [post]
func (h *CartHandler) Add(c *gin.Context) {
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	userID := middleware.MustGetUserID(c)

	if err := h.addToCart.Execute(c.Request.Context(), userID, bookID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// UpdateQuantity 修改数量
// @Summary      修改购物车数量
// @Description  直接设置数量(不是增量)
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        book_id path int true "图书ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{book_id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.updateQuantity.Execute(c.Request.Context(), userID, bookID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Remove 移除条目
// @Summary      从购物车移除
// @Description  整条移除,不做数量递减
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        book_id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{book_id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.removeFromCart.Execute(c.Request.Context(), userID, bookID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseBookIDParam 解析路径中的book_id参数
func parseBookIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("book_id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "book_id参数错误")
		return 0, false
	}
	return uint(id), true
}
