// Package notify posts booking notifications to external SMS and email
// gateways. Delivery is best-effort: failures are logged and never surfaced
// to the booking flow, and nothing is retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Client sends fire-and-forget notifications over HTTP.
// Either endpoint may be empty, in which case that channel is skipped.
type Client struct {
	smsURL   string
	emailURL string
	http     *http.Client
	log      *slog.Logger
}

// New constructs a Client. logger may not be nil.
func New(smsURL, emailURL string, logger *slog.Logger) *Client {
	return &Client{
		smsURL:   smsURL,
		emailURL: emailURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      logger,
	}
}

// payload is the common body both gateways accept.
type payload struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Send posts the message to each configured gateway. Errors are logged with
// the gateway name; the caller never sees them.
func (c *Client) Send(ctx context.Context, subject, message string) {
	body, err := json.Marshal(payload{Subject: subject, Message: message})
	if err != nil {
		c.log.ErrorContext(ctx, "notification encode failed", "error", err)
		return
	}

	c.post(ctx, "sms", c.smsURL, body)
	c.post(ctx, "email", c.emailURL, body)
}

func (c *Client) post(ctx context.Context, gateway, url string, body []byte) {
	if url == "" {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.ErrorContext(ctx, "notification request failed", "gateway", gateway, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "notification send failed", "gateway", gateway, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.log.ErrorContext(ctx, "notification rejected", "gateway", gateway, "status", resp.StatusCode)
	}
}
