package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-storefront-api/internal/admin"
	"go-storefront-api/internal/auth"
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/contact"
	"go-storefront-api/internal/email"
	"go-storefront-api/internal/outbox"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, logger *zap.Logger) {
	// Repositories
	cartRepo := cart.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)
	authRepo := auth.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	// Services
	cartSvc := cart.NewService(cart.Deps{
		DB:         db,
		Repo:       cartRepo,
		OutboxRepo: outboxRepo,
		Logger:     logger,
	})
	authSvc := auth.NewService(auth.Deps{
		Repo:     authRepo,
		CartRepo: cartRepo,
		CartSvc:  cartSvc,
		Logger:   logger,
	})
	emailSvc, err := email.NewResendServiceFromEnv()
	if err != nil {
		logger.Warn("email disabled, falling back to noop sender", zap.Error(err))
		emailSvc = email.NewNoopService()
	}

	// Handlers
	cartHandler := cart.NewHandler(cartSvc)
	authHandler := auth.NewHandler(authSvc)
	contactHandler := contact.NewHandler(emailSvc, logger)
	adminHandler := admin.NewHandler(adminRepo, cartRepo, rdb, logger)

	api := router.Group("/api")
	cart.RegisterRoutes(api, cartHandler)
	auth.RegisterRoutes(api, authHandler)
	contact.RegisterRoutes(api, contactHandler)
	admin.RegisterRoutes(api, adminHandler)
}
