package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookie/internal/application/review"
	"github.com/xiebiao/bookie/internal/interface/http/dto"
	"github.com/xiebiao/bookie/internal/interface/http/middleware"
	"github.com/xiebiao/bookie/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	addReview   *appreview.AddReviewUseCase
	listReviews *appreview.ListReviewsUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	addReview *appreview.AddReviewUseCase,
	listReviews *appreview.ListReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		addReview:   addReview,
		listReviews: listReviews,
	}
}

// Add 发表评论
// @Summary      发表评论
// @Description  给图书打分(1-5)并附文字评论;评论发表后不可修改
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.AddReviewRequest true "评论内容"
// @Success      200 {object} response.Response{data=appreview.ReviewItem}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/reviews [post]
func (h *ReviewHandler) Add(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.addReview.Execute(c.Request.Context(), appreview.AddReviewRequest{
		BookID: bookID,
		UserID: userID,
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 图书评论列表
// @Summary      图书评论列表
// @Description  按发表时间降序分页,附带评论人昵称
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        page query int false "页码(从1开始)"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listReviews.Execute(c.Request.Context(), bookID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}
