package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ResendMailer delivers verification codes through the Resend HTTP API. The
// client timeout bounds a slow dispatch so it surfaces as a delivery failure
// instead of hanging the request.
type ResendMailer struct {
	APIKey     string
	HTTPClient *http.Client
	From       string
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		From:       from,
	}
}

func (m *ResendMailer) SendVerificationCode(ctx context.Context, email string, code int, validity time.Duration) error {
	if strings.TrimSpace(m.APIKey) == "" {
		return errors.New("mailer not configured")
	}
	minutes := int(validity.Minutes())
	subject := "Verify Your Account"
	text := fmt.Sprintf(
		"Copy/paste this one-time passcode to complete your account verification: %06d. It expires in %d minutes.",
		code, minutes,
	)
	html := fmt.Sprintf(
		`<h1>Email Verification</h1><p>Use the following one-time passcode to complete your verification.</p><p style="font-size:24px;letter-spacing:6px;font-weight:bold">%06d</p><p>This code will expire in <strong>%d minutes</strong>.</p><p>If you did not request this, please ignore this email.</p>`,
		code, minutes,
	)
	return m.send(ctx, email, subject, html, text)
}

func (m *ResendMailer) send(ctx context.Context, to string, subject string, html string, text string) error {
	if m.HTTPClient == nil {
		m.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	payload := map[string]any{
		"from":    m.From,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
		"text":    text,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+m.APIKey)
	request.Header.Set("Content-Type", "application/json")
	response, err := m.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		return fmt.Errorf("resend email failed with status %d", response.StatusCode)
	}
	return nil
}
