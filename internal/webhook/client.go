// Package webhook notifies the external workflow engine about scheduling
// requests. The engine owns call placement and retries; this client only
// delivers the payload.
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mzaikin/wakecall/internal/config"
	"github.com/mzaikin/wakecall/internal/models"
)

// Notifier delivers a scheduling payload downstream.
type Notifier interface {
	Notify(ctx context.Context, payload *models.WebhookPayload) error
}

type Client struct {
	httpClient *resty.Client
	webhookURL string
}

func NewClient(cfg config.WebhookConfig) *Client {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.AuthKey != "" {
		client.SetHeader("x-wake-auth-key", cfg.AuthKey)
	}

	return &Client{
		httpClient: client,
		webhookURL: cfg.URL,
	}
}

// Notify posts the payload to the workflow engine. Any 2xx response is a
// success; everything else is a failure.
func (c *Client) Notify(ctx context.Context, payload *models.WebhookPayload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("unexpected webhook status: %d", resp.StatusCode())
	}

	return nil
}

func (c *Client) URL() string {
	return c.webhookURL
}
