package cart

import (
	"errors"
	"net/http"

	carterrors "go-storefront-api/internal/cart/errors"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func respondError(ctx *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	cart, err := h.service.AddItem(ctx, userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (h *Handler) ReplaceItems(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")
	targetUserID := ctx.Param("userId")

	var req ReplaceItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.ReplaceItems(ctx, userID, targetUserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

func (h *Handler) GetItems(ctx *gin.Context) {
	cart, err := h.service.GetItems(ctx, ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	cart, err := h.service.RemoveItem(ctx, userID, ctx.Param("userId"), ctx.Param("productId"))
	if err != nil {
		if errors.Is(err, carterrors.ErrCartNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"message": "Cart not found"})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}
