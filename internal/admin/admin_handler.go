package admin

import (
	"net/http"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CartActivityKey is incremented by the event consumer for every applied
// cart mutation; stats read it back.
const CartActivityKey = "stats:cart_updates"

type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

type StatsResponse struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalCarts  int64 `json:"totalCarts"`
	CartUpdates int64 `json:"cartUpdates"`
}

type Handler struct {
	repo     Repository
	cartRepo cart.Repository
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewHandler(repo Repository, cartRepo cart.Repository, rdb *redis.Client, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, cartRepo: cartRepo, rdb: rdb, logger: logger}
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	users, err := h.repo.ListUsers(ctx)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		response.Error(ctx, http.StatusInternalServerError, apperror.CodeInternalError, "internal server error", nil)
		return
	}

	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, UserDTO{
			ID:        u.ID.String(),
			Name:      u.Name,
			Username:  u.Username,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *Handler) Stats(ctx *gin.Context) {
	totalUsers, err := h.repo.CountUsers(ctx)
	if err != nil {
		h.logger.Error("failed to count users", zap.Error(err))
		response.Error(ctx, http.StatusInternalServerError, apperror.CodeInternalError, "internal server error", nil)
		return
	}

	totalCarts, err := h.cartRepo.CountCarts(ctx)
	if err != nil {
		h.logger.Error("failed to count carts", zap.Error(err))
		response.Error(ctx, http.StatusInternalServerError, apperror.CodeInternalError, "internal server error", nil)
		return
	}

	// Activity counter is best-effort; a cold redis just reads as zero.
	cartUpdates, err := h.rdb.Get(ctx, CartActivityKey).Int64()
	if err != nil {
		cartUpdates = 0
	}

	ctx.JSON(http.StatusOK, StatsResponse{
		TotalUsers:  totalUsers,
		TotalCarts:  totalCarts,
		CartUpdates: cartUpdates,
	})
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", handler.ListUsers)
		adminGroup.GET("/stats", handler.Stats)
	}
}
