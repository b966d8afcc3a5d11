// 填充演示数据:分类、体裁、作者、图书、用户、评论、订单和收藏
// 用法: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/catalog"
	"github.com/xiebiao/bookie/internal/domain/order"
	"github.com/xiebiao/bookie/internal/domain/review"
	"github.com/xiebiao/bookie/internal/domain/user"
	"github.com/xiebiao/bookie/internal/infrastructure/config"
	"github.com/xiebiao/bookie/internal/infrastructure/persistence/mysql"
)

var categoryNames = []string{"文学", "科技", "少儿", "经管", "生活"}

var genreNames = []string{"科幻", "悬疑", "历史", "散文", "编程"}

var seriesNames = []string{"三体系列", "银河帝国系列"}

var authorNames = []string{"刘慈欣", "阿西莫夫", "东野圭吾", "余华", "Alan Donovan"}

var bookTitles = []string{
	"三体", "三体II 黑暗森林", "三体III 死神永生",
	"基地", "基地与帝国", "第二基地",
	"白夜行", "嫌疑人X的献身", "解忧杂货店",
	"活着", "许三观卖血记", "兄弟",
	"Go程序设计语言", "深入理解计算机系统", "代码大全",
	"平凡的世界", "围城", "百年孤独", "小王子", "窗边的小豆豆",
	"人类简史", "未来简史", "时间简史", "万历十五年", "明朝那些事儿",
	"球状闪电", "流浪地球", "超新星纪元", "乡村教师", "赡养人类",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	authorRepo := mysql.NewAuthorRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	favoriteRepo := mysql.NewFavoriteRepository(db)
	userService := user.NewService(userRepo)
	txManager := mysql.NewTxManager(db)

	ctx := context.Background()

	// 全部数据在一个事务内写入:失败时不留半套数据
	err = txManager.Transaction(ctx, func(ctx context.Context) error {
		// 1. 分类/体裁/系列
		categories := make([]*catalog.Category, len(categoryNames))
		for i, name := range categoryNames {
			categories[i] = &catalog.Category{Name: name}
			if err := catalogRepo.CreateCategory(ctx, categories[i]); err != nil {
				return err
			}
		}

		genres := make([]*catalog.Genre, len(genreNames))
		for i, name := range genreNames {
			genres[i] = &catalog.Genre{Name: name}
			if err := catalogRepo.CreateGenre(ctx, genres[i]); err != nil {
				return err
			}
		}

		series := make([]*catalog.Series, len(seriesNames))
		for i, name := range seriesNames {
			series[i] = &catalog.Series{Name: name}
			if err := catalogRepo.CreateSeries(ctx, series[i]); err != nil {
				return err
			}
		}

		// 2. 作者
		authors := make([]*author.Author, len(authorNames))
		for i, name := range authorNames {
			authors[i] = author.NewAuthor(name, "", "")
			if err := authorRepo.Create(ctx, authors[i]); err != nil {
				return err
			}
		}

		// 3. 图书
		// 一部分折扣为0,一部分带百分比折扣;创建时间往回错开,
		// 让货架期折扣规则在演示数据里就能生效
		books := make([]*book.Book, 0, len(bookTitles))
		for i, title := range bookTitles {
			var seriesID *uint
			if i < 6 {
				id := series[i/3].ID
				seriesID = &id
			}

			b := book.NewBook(
				title,
				authors[rand.Intn(len(authors))].ID,
				genres[rand.Intn(len(genres))].ID,
				categories[rand.Intn(len(categories))].ID,
				seriesID,
				1990+rand.Intn(time.Now().Year()-1990+1),
				fakeISBN13(i),
				int64(1000+rand.Intn(9000)), // 10.00-99.99元
				rand.Intn(4)*10,             // 0/10/20/30
				"",
				"",
				book.StatusAvailable,
			)
			b.CreatedAt = time.Now().AddDate(0, 0, -rand.Intn(90))
			if err := bookRepo.Create(ctx, b); err != nil {
				return err
			}
			books = append(books, b)
		}

		// 4. 用户
		users := make([]*user.User, 0, 5)
		for i := 0; i < 5; i++ {
			u, err := userService.Register(ctx,
				fmt.Sprintf("reader%d@example.com", i+1),
				"passw0rd123",
				fmt.Sprintf("书虫%d号", i+1),
			)
			if err != nil {
				return err
			}
			users = append(users, u)
		}

		// 5. 评论(只给一部分书:留一些avg_rating为null的书)
		texts := []string{"好看", "值得一读", "一般般", "强烈推荐", "不太喜欢"}
		for _, b := range books {
			if rand.Intn(3) == 0 {
				continue
			}
			n := 1 + rand.Intn(3)
			for j := 0; j < n; j++ {
				rating, _ := review.NewRating(1 + rand.Intn(5))
				r, err := review.NewReview(b.ID, users[rand.Intn(len(users))].ID, texts[rand.Intn(len(texts))], rating)
				if err != nil {
					return err
				}
				if err := reviewRepo.Create(ctx, r); err != nil {
					return err
				}
			}
		}

		// 6. 订单(销量统计的数据源)
		now := time.Now()
		for i := 0; i < 10; i++ {
			u := users[rand.Intn(len(users))]
			n := 1 + rand.Intn(3)
			items := make([]*order.Item, 0, n)
			for j := 0; j < n; j++ {
				b := books[rand.Intn(len(books))]
				item, err := order.NewItem(b.ID, 1+rand.Intn(3), b.DiscountedPrice(now))
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			o := &order.Order{
				UserID:        u.ID,
				Status:        order.StatusCompleted,
				PaymentMethod: "alipay",
				Items:         items,
			}
			if err := orderRepo.Create(ctx, o); err != nil {
				return err
			}
		}

		// 7. 收藏
		for _, u := range users {
			n := 2 + rand.Intn(4)
			for j := 0; j < n; j++ {
				b := books[rand.Intn(len(books))]
				if err := favoriteRepo.Add(ctx, u.ID, b.ID); err != nil {
					return err
				}
			}
		}

		// 8. 促销活动
		promo := &catalog.Promotion{
			Description: "暑期科幻专场",
			Type:        "seasonal",
			StartDate:   now.AddDate(0, 0, -7),
			EndDate:     now.AddDate(0, 1, 0),
		}
		if err := catalogRepo.CreatePromotion(ctx, promo); err != nil {
			return err
		}
		for i := 0; i < 5; i++ {
			if err := catalogRepo.LinkPromotion(ctx, promo.ID, books[rand.Intn(len(books))].ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Fatalf("填充数据失败: %v", err)
	}

	fmt.Println("✓ 演示数据填充完成")
}

// fakeISBN13 生成演示用的13位ISBN(不校验校验位)
func fakeISBN13(seq int) string {
	return fmt.Sprintf("9787%09d", 100000000+seq)
}
