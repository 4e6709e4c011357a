package contact

import (
	"net/http"

	"go-storefront-api/internal/email"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SendRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type Handler struct {
	emailSvc email.Service
	logger   *zap.Logger
}

func NewHandler(emailSvc email.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{emailSvc: emailSvc, logger: logger}
}

func (h *Handler) Send(ctx *gin.Context) {
	var req SendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "All fields are required", err.Error())
		return
	}

	if err := h.emailSvc.SendContactMessage(ctx, req.Name, req.Email, req.Subject, req.Message); err != nil {
		h.logger.Error("contact email failed", zap.Error(err))
		response.Error(ctx, http.StatusInternalServerError, apperror.CodeInternalError, "Error sending message. Please try again later.", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message sent successfully! We will get back to you soon."})
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contactGroup := r.Group("/contact")
	{
		contactGroup.POST("/send", handler.Send)
	}
}
