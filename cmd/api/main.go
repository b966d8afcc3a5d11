package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauthor "github.com/xiebiao/bookie/internal/application/author"
	appbook "github.com/xiebiao/bookie/internal/application/book"
	appcart "github.com/xiebiao/bookie/internal/application/cart"
	appcatalog "github.com/xiebiao/bookie/internal/application/catalog"
	appfavorite "github.com/xiebiao/bookie/internal/application/favorite"
	appreview "github.com/xiebiao/bookie/internal/application/review"
	appuser "github.com/xiebiao/bookie/internal/application/user"
	"github.com/xiebiao/bookie/internal/domain/author"
	"github.com/xiebiao/bookie/internal/domain/book"
	"github.com/xiebiao/bookie/internal/domain/user"
	"github.com/xiebiao/bookie/internal/infrastructure/config"
	"github.com/xiebiao/bookie/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookie/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookie/internal/interface/http/handler"
	"github.com/xiebiao/bookie/internal/interface/http/middleware"
	"github.com/xiebiao/bookie/pkg/jwt"
	"github.com/xiebiao/bookie/pkg/metrics"
	"github.com/xiebiao/bookie/pkg/response"
)

// @title           Bookie 在线书店API
// @version         1.0
// @description     图书浏览、购物车、收藏、评论与统计服务
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化Prometheus指标
	metrics.InitMetrics()

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	favoriteRepo := mysql.NewFavoriteRepository(db)
	statsRepo := mysql.NewStatsRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	authorService := author.NewService(authorRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, authorRepo, catalogRepo)
	annotatedBooksUseCase := appbook.NewAnnotatedBooksUseCase(bookService, statsRepo, authorRepo, catalogRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, statsRepo, authorRepo, catalogRepo)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService, authorRepo, catalogRepo)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, authorRepo, catalogRepo)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorService, bookRepo)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorService, bookRepo)
	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorService)
	updateAuthorUseCase := appauthor.NewUpdateAuthorUseCase(authorService)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorService)
	addReviewUseCase := appreview.NewAddReviewUseCase(reviewRepo, bookService)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewRepo, bookService, userRepo)
	addToCartUseCase := appcart.NewAddToCartUseCase(cartRepo, bookService)
	removeFromCartUseCase := appcart.NewRemoveFromCartUseCase(cartRepo)
	updateCartQuantityUseCase := appcart.NewUpdateCartQuantityUseCase(cartRepo)
	viewCartUseCase := appcart.NewViewCartUseCase(cartRepo, bookRepo)
	toggleFavoriteUseCase := appfavorite.NewToggleFavoriteUseCase(favoriteRepo, bookService)
	listFavoritesUseCase := appfavorite.NewListFavoritesUseCase(favoriteRepo, bookRepo)
	listCategoriesUseCase := appcatalog.NewListCategoriesUseCase(catalogRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(
		listBooksUseCase,
		annotatedBooksUseCase,
		getBookUseCase,
		createBookUseCase,
		updateBookUseCase,
		deleteBookUseCase,
	)
	authorHandler := handler.NewAuthorHandler(
		listAuthorsUseCase,
		getAuthorUseCase,
		createAuthorUseCase,
		updateAuthorUseCase,
		deleteAuthorUseCase,
	)
	reviewHandler := handler.NewReviewHandler(addReviewUseCase, listReviewsUseCase)
	cartHandler := handler.NewCartHandler(
		addToCartUseCase,
		removeFromCartUseCase,
		updateCartQuantityUseCase,
		viewCartUseCase,
	)
	favoriteHandler := handler.NewFavoriteHandler(toggleFavoriteUseCase, listFavoritesUseCase)
	catalogHandler := handler.NewCatalogHandler(listCategoriesUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r, &handlers{
		user:     userHandler,
		book:     bookHandler,
		author:   authorHandler,
		review:   reviewHandler,
		cart:     cartHandler,
		favorite: favoriteHandler,
		catalog:  catalogHandler,
		auth:     authMiddleware,
	})

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   图书列表: GET http://localhost%s/api/v1/books\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// handlers 路由注册用的处理器集合
type handlers struct {
	user     *handler.UserHandler
	book     *handler.BookHandler
	author   *handler.AuthorHandler
	review   *handler.ReviewHandler
	cart     *handler.CartHandler
	favorite *handler.FavoriteHandler
	catalog  *handler.CatalogHandler
	auth     *middleware.AuthMiddleware
}

// registerRoutes 注册路由
// 浏览类接口公开,写操作和个人数据需要登录
func registerRoutes(r *gin.Engine, h *handlers) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 文档页面依赖swag init生成的docs包,未生成前访问会提示doc.json缺失
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", h.user.Register)
			users.POST("/login", h.user.Login)
			users.POST("/logout", h.auth.RequireAuth(), h.user.Logout)
		}

		// 图书模块(浏览公开,维护需要登录)
		books := v1.Group("/books")
		{
			books.GET("", h.book.List)
			books.GET("/annotated", h.book.ListAnnotated)
			books.GET("/:id", h.book.Get)
			books.GET("/:id/reviews", h.review.List)

			books.POST("", h.auth.RequireAuth(), h.book.Create)
			books.PUT("/:id", h.auth.RequireAuth(), h.book.Update)
			books.DELETE("/:id", h.auth.RequireAuth(), h.book.Delete)
			books.POST("/:id/reviews", h.auth.RequireAuth(), h.review.Add)
			books.POST("/:id/favorite", h.auth.RequireAuth(), h.favorite.Toggle)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", h.author.List)
			authors.GET("/:id", h.author.Get)

			authors.POST("", h.auth.RequireAuth(), h.author.Create)
			authors.PUT("/:id", h.auth.RequireAuth(), h.author.Update)
			authors.DELETE("/:id", h.auth.RequireAuth(), h.author.Delete)
		}

		// 分类模块
		v1.GET("/categories", h.catalog.ListCategories)
		v1.GET("/categories/:id/books", h.book.ListByCategory)

		// 购物车模块(全部需要登录)
		cart := v1.Group("/cart")
		cart.Use(h.auth.RequireAuth())
		{
			cart.GET("", h.cart.View)
			cart.POST("/items/:book_id", h.cart.Add)
			cart.PUT("/items/:book_id", h.cart.UpdateQuantity)
			cart.DELETE("/items/:book_id", h.cart.Remove)
		}

		// 收藏模块(开关挂在图书路径下,列表需要登录)
		v1.GET("/favorites", h.auth.RequireAuth(), h.favorite.List)
	}
}
