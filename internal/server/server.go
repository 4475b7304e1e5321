package server

import (
	"fmt"
	"os"

	"github.com/andriannf/storedesk/config"
	"github.com/andriannf/storedesk/internal/advisory"
	"github.com/andriannf/storedesk/internal/cache"
	"github.com/andriannf/storedesk/internal/handlers"
	"github.com/andriannf/storedesk/internal/middleware"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		// The cache is an optimization; run without it.
		log.Warn().Err(err).Msg("redis unavailable, product cache disabled")
		redisClient = nil
	}

	var productCache *cache.ProductCache
	if redisClient != nil {
		productCache = cache.NewProductCache(redisClient)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	setupRoutes(r, db, productCache, advisory.NewGeminiClient(cfg.GeminiAPIKey))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, productCache *cache.ProductCache, advisor advisory.Advisor) {
	productRepo := repositories.NewProductRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	customerProductRepo := repositories.NewCustomerProductRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	socialPostRepo := repositories.NewSocialPostRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	productHandler := handlers.NewProductHandler(productRepo, productCache)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	customerProductHandler := handlers.NewCustomerProductHandler(customerProductRepo)
	couponHandler := handlers.NewCouponHandler(couponRepo)
	socialPostHandler := handlers.NewSocialPostHandler(socialPostRepo)
	chatHandler := handlers.NewChatHandler(chatRepo, productRepo, advisor)

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.POST("", customerHandler.Create)
			customers.GET("/:id", customerHandler.Get)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		customerProducts := api.Group("/customer-products")
		{
			customerProducts.GET("", customerProductHandler.List)
			customerProducts.POST("", customerProductHandler.Create)
		}

		coupons := api.Group("/coupons")
		{
			coupons.GET("", couponHandler.List)
			coupons.POST("", couponHandler.Create)
			coupons.PUT("/:id", couponHandler.Update)
			coupons.DELETE("/:id", couponHandler.Delete)
		}

		socialPosts := api.Group("/social-posts")
		{
			socialPosts.GET("", socialPostHandler.List)
			socialPosts.POST("", socialPostHandler.Create)
			socialPosts.PUT("/:id", socialPostHandler.Update)
			socialPosts.DELETE("/:id", socialPostHandler.Delete)
		}

		chat := api.Group("/chat")
		{
			chat.GET("", chatHandler.List)
			chat.POST("", chatHandler.Create)
		}
	}
}
