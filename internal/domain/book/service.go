package book

import (
	"context"
	"regexp"
	"time"
)

// Service 图书领域服务接口
// 封装跨实体的业务规则校验,不依赖具体Repository实现
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字),且不能重复
	// - 标价>=0(分),折扣在0-100之间
	// - 状态必须是合法枚举值
	CreateBook(ctx context.Context, b *Book) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书(空字符串/负值字段表示不修改)
	UpdateBook(ctx context.Context, id uint, patch UpdatePatch) (*Book, error)

	// DeleteBook 删除图书(级联删除所有从属记录)
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 按条件分页查询
	ListBooks(ctx context.Context, filter ListFilter) ([]*Book, int64, error)
}

// UpdatePatch 更新图书的字段集
// 指针字段为nil表示不修改该字段
type UpdatePatch struct {
	Title       string
	Description string
	CoverURL    string
	Price       *int64
	Discount    *int
	Status      *Status
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	// 1. ISBN格式校验
	if !isValidISBN(b.ISBN) {
		return nil, ErrInvalidISBN
	}

	// 2. 标价/折扣校验(边界拒绝越界值,定价函数本身不钳制)
	if b.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if b.Discount < 0 || b.Discount > 100 {
		return nil, ErrInvalidDiscount
	}

	// 3. 状态校验
	if !b.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	// 4. 出版年份校验
	if b.Year != 0 && (b.Year < 1450 || b.Year > time.Now().Year()+1) {
		return nil, ErrInvalidYear
	}

	// 5. ISBN重复检查(数据库唯一索引兜底)
	existing, err := s.repo.FindByISBN(ctx, b.ISBN)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && err != ErrBookNotFound {
		return nil, err
	}

	// 6. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, patch UpdatePatch) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用补丁(实体方法负责各自的业务规则)
	b.UpdateInfo(patch.Title, patch.Description, patch.CoverURL)

	if patch.Price != nil {
		if err := b.UpdatePrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Discount != nil {
		if err := b.UpdateDiscount(*patch.Discount); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err := b.UpdateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
// 评论、订单明细、购物车条目、收藏、促销关联都随图书一起删除
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 按条件分页查询
func (s *service) ListBooks(ctx context.Context, filter ListFilter) ([]*Book, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

// isValidISBN 校验ISBN格式
// 支持ISBN-10与ISBN-13,允许分隔符(978-7-115-42802-8)
// 简化实现:只检查位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
