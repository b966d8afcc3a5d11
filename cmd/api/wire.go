//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成wire_gen.go,
// main.go的手动组装与这里的依赖链保持一致
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewCatalogRepository,
	mysql.NewReviewRepository,
	mysql.NewCartRepository,
	mysql.NewFavoriteRepository,
	mysql.NewStatsRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
	author.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewAnnotatedBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appreview.NewAddReviewUseCase,
	appreview.NewListReviewsUseCase,
	appcart.NewAddToCartUseCase,
	appcart.NewRemoveFromCartUseCase,
	appcart.NewUpdateCartQuantityUseCase,
	appcart.NewViewCartUseCase,
	appfavorite.NewToggleFavoriteUseCase,
	appfavorite.NewListFavoritesUseCase,
	appcatalog.NewListCategoriesUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewReviewHandler,
	handler.NewCartHandler,
	handler.NewFavoriteHandler,
	handler.NewCatalogHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	reviewHandler *handler.ReviewHandler,
	cartHandler *handler.CartHandler,
	favoriteHandler *handler.FavoriteHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.Default()
	r.Use(metrics.GinMiddleware())

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

	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
