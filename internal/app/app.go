// Package app assembles the HTTP application from the domain packages.
package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"foodgram/internal/config"
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shoppinglist"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/response"
	"foodgram/internal/pkg/validator"
)

// Models lists every table, in dependency order.
func Models() []any {
	models := []any{&auth.User{}, &catalog.Tag{}, &catalog.Ingredient{}}
	models = append(models, recipe.Models()...)
	return append(models, &subscription.Subscription{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// NewRouter wires repositories, services and handlers onto a gin engine.
// limiter may be nil to disable rate limiting.
func NewRouter(cfg *config.Config, db *gorm.DB, limiter *middleware.RateLimiter) *gin.Engine {
	validator.RegisterGin()
	tokens := jwt.New(cfg.JWT.Secret, cfg.JWT.TTL)

	// repositories
	userRepo := auth.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)
	subRepo := subscription.NewRepository(db)

	// services
	authService := auth.NewService(userRepo, tokens, subRepo)
	authService.RegisterPurger(recipeRepo)
	authService.RegisterPurger(subRepo)

	catalogService := catalog.NewService(catalogRepo)

	favorites := recipe.NewFavorites(db, recipeRepo)
	cart := recipe.NewShoppingCart(db, recipeRepo)
	recipeService := recipe.NewService(recipeRepo, catalogRepo, authService, favorites, cart)

	subService := subscription.NewService(subRepo, authService, recipeService)
	aggregator := shoppinglist.NewAggregator(cart, recipeRepo)

	// handlers
	authHandler := auth.NewHandler(authService, cfg.Page.Size)
	catalogHandler := catalog.NewHandler(catalogService)
	recipeHandler := recipe.NewHandler(recipeService, cfg.Page.Size)
	subHandler := subscription.NewHandler(subService, cfg.Page.Size)
	listHandler := shoppinglist.NewHandler(aggregator)

	r := gin.New()
	// AccessLog and Metrics wrap ErrorLogger so recovered panics are still
	// logged and counted as 500s.
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if limiter != nil {
		r.Use(limiter.Limit())
	}

	r.GET("/healthz", health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		public := api.Group("")
		public.Use(middleware.OptionalAuth(tokens))
		authHandler.RegisterRoutes(public)
		catalogHandler.RegisterRoutes(public)
		recipeHandler.RegisterRoutes(public)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(tokens))
		authHandler.RegisterProtectedRoutes(protected)
		recipeHandler.RegisterProtectedRoutes(protected)
		subHandler.RegisterProtectedRoutes(protected)
		listHandler.RegisterProtectedRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})
	return r
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	}
}
