package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookie/internal/application/book"
	"github.com/xiebiao/bookie/internal/interface/http/dto"
	"github.com/xiebiao/bookie/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. Handler只负责HTTP相关的事情:解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑(业务逻辑在domain和application层)
type BookHandler struct {
	listBooks      *appbook.ListBooksUseCase
	annotatedBooks *appbook.AnnotatedBooksUseCase
	getBook        *appbook.GetBookUseCase
	createBook     *appbook.CreateBookUseCase
	updateBook     *appbook.UpdateBookUseCase
	deleteBook     *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooks *appbook.ListBooksUseCase,
	annotatedBooks *appbook.AnnotatedBooksUseCase,
	getBook *appbook.GetBookUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooks:      listBooks,
		annotatedBooks: annotatedBooks,
		getBook:        getBook,
		createBook:     createBook,
		updateBook:     updateBook,
		deleteBook:     deleteBook,
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  分页浏览图书,支持价格区间/作者/体裁/状态/分类过滤,每页10条,价格升序
// @Tags         图书
// @Produce      json
// @Param        min_price query int false "最低价(分,含)"
// @Param        max_price query int false "最高价(分,含)"
// @Param        author query string false "作者姓名子串(忽略大小写)"
// @Param        genre query string false "体裁名称子串(忽略大小写)"
// @Param        status query string false "状态" Enums(available, out_of_stock, discontinued)
// @Param        category_id query int false "分类ID"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooks.Execute(c.Request.Context(), toListRequest(query))
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookResponse, len(result.List))
	for i, item := range result.List {
		list[i] = dto.FromBookItem(item)
	}
	response.SuccessWithPage(c, list, result.Total, result.Page, result.PageSize)
}

// ListAnnotated 带统计的图书列表
// @Summary      带统计的图书列表
// @Description  在普通列表之上附加平均评分、累计销量、收藏人数;过滤条件与普通列表一致
// @Tags         图书
// @Produce      json
// @Param        min_price query int false "最低价(分,含)"
// @Param        max_price query int false "最高价(分,含)"
// @Param        author query string false "作者姓名子串(忽略大小写)"
// @Param        genre query string false "体裁名称子串(忽略大小写)"
// @Param        status query string false "状态" Enums(available, out_of_stock, discontinued)
// @Param        category_id query int false "分类ID"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/annotated [get]
func (h *BookHandler) ListAnnotated(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.annotatedBooks.Execute(c.Request.Context(), toListRequest(query))
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.AnnotatedBookResponse, len(result.List))
	for i, item := range result.List {
		list[i] = dto.FromAnnotatedItem(item)
	}
	response.SuccessWithPage(c, list, result.Total, result.Page, result.PageSize)
}

// ListByCategory 按分类浏览图书
// @Summary      分类下的图书
// @Description  指定分类的图书列表,其余过滤条件与普通列表一致
// @Tags         图书
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/categories/{id}/books [get]
func (h *BookHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	req := toListRequest(query)
	req.CategoryID = categoryID // 路径参数优先于查询参数

	result, err := h.listBooks.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookResponse, len(result.List))
	for i, item := range result.List {
		list[i] = dto.FromBookItem(item)
	}
	response.SuccessWithPage(c, list, result.Total, result.Page, result.PageSize)
}

// Get 图书详情
// @Summary      图书详情
// @Description  返回图书全部字段、实际售价、三项统计和促销活动
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getBook.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.FromBookDetail(result))
}

// Create 录入图书
// @Summary      录入图书
// @Description  新增一本图书,ISBN不能与已有图书重复
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createBook.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       req.Title,
		AuthorID:    req.AuthorID,
		GenreID:     req.GenreID,
		CategoryID:  req.CategoryID,
		SeriesID:    req.SeriesID,
		Year:        req.Year,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Discount:    req.Discount,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.FromBookItem(*result))
}

// Update 更新图书
// @Summary      更新图书
// @Description  部分更新:请求中未携带的字段保持原值
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateBook.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Price:       req.Price,
		Discount:    req.Discount,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.FromBookItem(*result))
}

// Delete 删除图书
// @Summary      删除图书
// @Description  删除图书及其全部评论、订单明细、购物车条目、收藏和促销关联
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteBook.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// toListRequest 查询参数转应用层请求
func toListRequest(query dto.ListBooksQuery) appbook.ListBooksRequest {
	return appbook.ListBooksRequest{
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Author:     query.Author,
		Genre:      query.Genre,
		Status:     query.Status,
		CategoryID: query.CategoryID,
		Page:       query.Page,
	}
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "ID参数错误")
		return 0, false
	}
	return uint(id), true
}
