package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/config"
	"github.com/partsbaypro/baypro-api/internal/auth"
	cartHandler "github.com/partsbaypro/baypro-api/internal/cart/handler"
	catalogHandler "github.com/partsbaypro/baypro-api/internal/catalog/handler"
	catalogRepo "github.com/partsbaypro/baypro-api/internal/catalog/repository"
	catalogUC "github.com/partsbaypro/baypro-api/internal/catalog/usecase"
	"github.com/partsbaypro/baypro-api/internal/model"
	orderHandler "github.com/partsbaypro/baypro-api/internal/order/handler"
	orderRepo "github.com/partsbaypro/baypro-api/internal/order/repository"
	orderUC "github.com/partsbaypro/baypro-api/internal/order/usecase"
	paymentHandler "github.com/partsbaypro/baypro-api/internal/payment/handler"
	paymentRepo "github.com/partsbaypro/baypro-api/internal/payment/repository"
	paymentUC "github.com/partsbaypro/baypro-api/internal/payment/usecase"
	userHandler "github.com/partsbaypro/baypro-api/internal/user/handler"
	userRepo "github.com/partsbaypro/baypro-api/internal/user/repository"
	userUC "github.com/partsbaypro/baypro-api/internal/user/usecase"
	vendorHandler "github.com/partsbaypro/baypro-api/internal/vendors/handler"
	vendorRepo "github.com/partsbaypro/baypro-api/internal/vendors/repository"
	vendorUC "github.com/partsbaypro/baypro-api/internal/vendors/usecase"
	"github.com/partsbaypro/baypro-api/pkg/database"
	"github.com/partsbaypro/baypro-api/pkg/logger"
	"github.com/partsbaypro/baypro-api/pkg/mailer"
	"github.com/partsbaypro/baypro-api/pkg/middleware"
	"github.com/partsbaypro/baypro-api/pkg/response"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	log := logger.NewZapLogger(&logger.Config{
		IsDevelopment:     cfg.Server.AppEnv != "production",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer log.Sync()

	log.Info("starting api", zap.String("env", cfg.Server.AppEnv), zap.String("port", cfg.Server.HTTPPort))

	db, err := database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		log.Fatal("postgres connection failed", zap.Error(err))
	}
	defer db.Close()

	cache := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := cache.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		cache = nil
	}

	mail := mailer.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.FromName, cfg.Mail.FromEmail)
	codec := auth.NewCodec(cfg.JWT.Secret, cfg.JWT.Validity)

	users := userUC.NewUserUseCase(userRepo.NewPGRepository(db), log)
	catalog := catalogUC.NewCatalogUseCase(catalogRepo.NewPGRepository(db), cache, cfg.Storage.ImageBaseURL, log)
	orders := orderUC.NewOrderUseCase(orderRepo.NewPGRepository(db), cfg.Storage.ImageBaseURL, log)
	payments := paymentUC.NewPaymentUseCase(paymentRepo.NewPGRepository(db), cfg.PayFast, mail, log)
	vendors := vendorUC.NewVendorUseCase(vendorRepo.NewPGRepository(db), cfg.Storage.ImageBaseURL, log)

	userH := userHandler.NewUserHandler(users, codec, log)
	catalogH := catalogHandler.NewCatalogHandler(catalog, log)
	cartH := cartHandler.NewCartHandler()
	orderH := orderHandler.NewOrderHandler(orders, log)
	paymentH := paymentHandler.NewPaymentHandler(payments, log)
	vendorH := vendorHandler.NewVendorHandler(vendors, log)

	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", userH.Register)
		api.POST("/auth/login", userH.Login)

		api.GET("/products", catalogH.ListProducts)
		api.GET("/products/:id", catalogH.GetProduct)
		api.GET("/categories", catalogH.ListCategories)

		api.POST("/payment/payfast/callback", paymentH.Callback)

		authed := api.Group("", auth.RequireAuth(codec))
		{
			authed.GET("/auth/me", userH.Me)
			authed.POST("/auth/logout", userH.Logout)
			authed.PUT("/user/profile", userH.UpdateProfile)
			authed.GET("/user/addresses", userH.Addresses)

			authed.GET("/cart", cartH.Get)
			authed.POST("/cart/add", cartH.Add)
			authed.PUT("/cart/update", cartH.Update)
			authed.DELETE("/cart/remove/:id", cartH.Remove)

			authed.GET("/orders", orderH.List)
			authed.GET("/orders/:id", orderH.Get)
			authed.POST("/orders/checkout", orderH.Checkout)

			authed.POST("/payment/payfast/initiate", paymentH.Initiate)

			vendorGroup := authed.Group("/vendor", auth.RequireRole(model.RoleVendor))
			{
				vendorGroup.GET("/dashboard", vendorH.Dashboard)
				vendorGroup.GET("/products", catalogH.VendorProducts)
				vendorGroup.POST("/products", catalogH.CreateProduct)
				vendorGroup.PUT("/products/:id", catalogH.UpdateProduct)
				vendorGroup.DELETE("/products/:id", catalogH.DeleteProduct)
				vendorGroup.GET("/sales", vendorH.Sales)
				vendorGroup.GET("/sales/export", vendorH.ExportSales)
			}
		}
	}

	server := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
