package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Mailer posts notifications to an HTTP mail API.
type Mailer struct {
	log     *zap.SugaredLogger
	client  *http.Client
	url     string
	apiKey  string
	from    string
	timeout time.Duration
}

// MailerConfig holds mail API settings.
type MailerConfig struct {
	URL         string
	APIKey      string
	FromAddress string
	SendTimeout time.Duration
}

// NewMailer constructs an HTTP mail client.
func NewMailer(log *zap.SugaredLogger, cfg MailerConfig) *Mailer {
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Mailer{
		log:     log.Named("notify.mailer"),
		client:  &http.Client{Timeout: timeout},
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		from:    cfg.FromAddress,
		timeout: timeout,
	}
}

type mailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send posts one message to the mail API.
func (m *Mailer) Send(ctx context.Context, address, subject, body string) error {
	payload, err := json.Marshal(mailPayload{From: m.from, To: address, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("post mail: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail api status %d", resp.StatusCode)
	}
	return nil
}
