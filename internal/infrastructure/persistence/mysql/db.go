package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookie/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate，生产环境应使用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&AuthorModel{},
		&CategoryModel{},
		&GenreModel{},
		&SeriesModel{},
		&PromotionModel{},
		&BookModel{},
		&PromoBookModel{},
		&ReviewModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CartItemModel{},
		&FavoriteModel{},
	)
}

// UserModel GORM用户模型
// 设计说明:
// 1. infrastructure层的数据模型包含GORM tag,domain实体不依赖GORM
// 2. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	Phone     string         `gorm:"size:20;comment:联系电话"`
	Address   string         `gorm:"size:255;comment:收货地址"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	FullName  string    `gorm:"index;size:200;not null;comment:姓名"`
	Bio       string    `gorm:"type:text;comment:简介"`
	PhotoURL  string    `gorm:"size:500;comment:照片URL"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;comment:分类名称"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// GenreModel GORM体裁模型
type GenreModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;comment:体裁名称"`
	Description string `gorm:"type:text;comment:描述"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// SeriesModel GORM系列模型
type SeriesModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null;comment:系列名称"`
}

// TableName 指定表名
func (SeriesModel) TableName() string {
	return "series"
}

// PromotionModel GORM促销活动模型
type PromotionModel struct {
	ID          uint      `gorm:"primaryKey"`
	Description string    `gorm:"type:text;not null;comment:活动描述"`
	Type        string    `gorm:"column:promotion_type;size:50;not null;comment:活动类型"`
	StartDate   time.Time `gorm:"comment:开始日期"`
	EndDate     time.Time `gorm:"comment:结束日期"`
}

// TableName 指定表名
func (PromotionModel) TableName() string {
	return "promotions"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题),只存标价,
//    实际售价每次展示时由定价规则重新计算,不落库
// 2. ISBN有唯一索引,防止重复
// 3. (price, id)复合索引支撑列表页"价格升序、ID兜底"的确定性排序
// 4. SeriesID可空:系列删除时置空,图书保留
type BookModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"index;size:200;not null;comment:书名"`
	AuthorID    uint      `gorm:"index;not null;comment:作者ID"`
	GenreID     uint      `gorm:"index;not null;comment:体裁ID"`
	CategoryID  uint      `gorm:"index;not null;comment:分类ID"`
	SeriesID    *uint     `gorm:"index;comment:系列ID(可空)"`
	Year        int       `gorm:"comment:出版年份"`
	ISBN        string    `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Price       int64     `gorm:"index:idx_price_id,priority:1;not null;comment:标价(分)"`
	Discount    int       `gorm:"type:tinyint;default:0;comment:百分比折扣(0-100)"`
	Description string    `gorm:"type:text;comment:图书描述"`
	CoverURL    string    `gorm:"size:500;comment:封面图片URL"`
	Status      string    `gorm:"index;size:20;not null;default:available;comment:状态"`
	CreatedAt   time.Time `gorm:"index;comment:上架时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// PromoBookModel GORM图书-促销关联模型
// (promotion_id, book_id)唯一:同一本书在同一活动中只关联一次
type PromoBookModel struct {
	ID          uint `gorm:"primaryKey"`
	PromotionID uint `gorm:"uniqueIndex:idx_promo_book,priority:1;not null;comment:促销活动ID"`
	BookID      uint `gorm:"uniqueIndex:idx_promo_book,priority:2;index;not null;comment:图书ID"`
}

// TableName 指定表名
func (PromoBookModel) TableName() string {
	return "promo_books"
}

// ReviewModel GORM评论模型
// 评论创建后不可修改,只有CreatedAt没有UpdatedAt
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	BookID    uint      `gorm:"index;not null;comment:图书ID"`
	UserID    uint      `gorm:"index;not null;comment:用户ID"`
	Text      string    `gorm:"type:text;comment:评论内容"`
	Rating    uint8     `gorm:"type:tinyint unsigned;not null;comment:评分(1-5)"`
	CreatedAt time.Time `gorm:"index;comment:评论时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// OrderModel GORM订单模型
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	UserID          uint             `gorm:"index;not null;comment:用户ID"`
	Status          string           `gorm:"index;size:20;not null;default:new;comment:订单状态"`
	DeliveryAddress string           `gorm:"size:255;comment:收货地址"`
	PaymentMethod   string           `gorm:"size:50;comment:支付方式"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
	CreatedAt       time.Time        `gorm:"index;comment:下单时间"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price是下单时的价格快照(分),创建后不再更新:
// 图书调价不影响历史订单
type OrderItemModel struct {
	ID       uint  `gorm:"primaryKey"`
	OrderID  uint  `gorm:"index;not null;comment:订单ID"`
	BookID   uint  `gorm:"index;not null;comment:图书ID"`
	Quantity int   `gorm:"not null;comment:购买数量"`
	Price    int64 `gorm:"not null;comment:下单时单价快照(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// CartItemModel GORM购物车模型
// (user_id, book_id)唯一索引是"重复加入合并数量"语义的基础:
// 并发加入同一本书时,数据库保证只存在一行
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_book,priority:1;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_cart_user_book,priority:2;index;not null;comment:图书ID"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "carts"
}

// FavoriteModel GORM收藏模型
// (user_id, book_id)唯一,重复收藏合并
type FavoriteModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_fav_user_book,priority:1;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_fav_user_book,priority:2;index;not null;comment:图书ID"`
	CreatedAt time.Time `gorm:"comment:收藏时间"`
}

// TableName 指定表名
func (FavoriteModel) TableName() string {
	return "favorites"
}
