package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmailService struct {
	err  error
	sent bool
}

func (f *fakeEmailService) SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error {
	f.sent = true
	return f.err
}

func setupContactRouter(svc *fakeEmailService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := contact.NewHandler(svc, nil)
	r.POST("/contact/send", h.Send)
	return r
}

func TestContactHandler_Send(t *testing.T) {
	body := `{"name":"Test User","email":"test@example.com","subject":"Hello","message":"Hi there"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmailService{}
		r := setupContactRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/contact/send", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.sent)
		assert.Contains(t, w.Body.String(), "Message sent successfully")
	})

	t.Run("missing_fields_is_400", func(t *testing.T) {
		svc := &fakeEmailService{}
		r := setupContactRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/contact/send", strings.NewReader(`{"name":"Test User"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, svc.sent)
	})

	t.Run("send_failure_is_500", func(t *testing.T) {
		svc := &fakeEmailService{err: errors.New("smtp down")}
		r := setupContactRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/contact/send", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
