package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error
}

type resendService struct {
	apiKey     string
	fromEmail  string
	adminEmail string
	baseURL    string
	httpClient *http.Client
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL"))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	admin := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	if admin == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is not configured")
	}

	return &resendService{
		apiKey:     apiKey,
		fromEmail:  from,
		adminEmail: admin,
		baseURL:    "https://api.resend.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *resendService) SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error {
	html := fmt.Sprintf(
		"<h3>Contact Form Submission</h3><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong> %s</p>",
		fromName,
		fromEmail,
		message,
	)

	payload, err := json.Marshal(map[string]any{
		"from":    s.fromEmail,
		"to":      []string{s.adminEmail},
		"subject": "New Contact Form Submission - " + subject,
		"html":    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("send email: status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

type noopService struct{}

// NewNoopService keeps local development working without email credentials.
func NewNoopService() Service {
	return &noopService{}
}

func (s *noopService) SendContactMessage(context.Context, string, string, string, string) error {
	return nil
}
