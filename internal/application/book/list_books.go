package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 过滤(价格区间/作者/体裁/状态/分类)在仓储层SQL中完成
// 2. 实际售价、关联名称在这里拼装,属于读路径的展示逻辑
// 3. 每页固定10条,排序为价格升序、ID升序兜底
type ListBooksUseCase struct {
	bookService book.Service
	authorRepo  author.Repository
	catalogRepo catalog.Repository
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(
	bookService book.Service,
	authorRepo author.Repository,
	catalogRepo catalog.Repository,
) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		authorRepo:  authorRepo,
		catalogRepo: catalogRepo,
	}
}

// ListBooksRequest 列表查询请求DTO
// 所有过滤条件可选,按AND组合
type ListBooksRequest struct {
	MinPrice   *int64 // 最低价(分,含)
	MaxPrice   *int64 // 最高价(分,含)
	Author     string // 作者姓名子串(忽略大小写)
	Genre      string // 体裁名称子串(忽略大小写)
	Status     string // 状态精确匹配
	CategoryID uint   // 分类浏览
	Page       int    // 页码(从1开始)
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []BookListItem `json:"list"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 构建查询条件
	// 分页默认值在这里填充:响应回显的page必须是实际查询用的页码,
	// 不能依赖Service内部对副本的归一化
	filter := book.ListFilter{
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Author:     req.Author,
		Genre:      req.Genre,
		Status:     book.Status(req.Status),
		CategoryID: req.CategoryID,
		Page:       req.Page,
		PageSize:   book.DefaultPageSize,
	}
	filter.Normalize()

	// 2. 查询(超出范围的页码返回空列表和正确的total)
	books, total, err := uc.bookService.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3. 批量取关联名称,拼装DTO
	idx, err := loadNameIndex(ctx, books, uc.authorRepo, uc.catalogRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	list := make([]BookListItem, len(books))
	for i, b := range books {
		list[i] = toListItem(b, idx, now)
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}, nil
}

// totalPages 计算总页数
func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
