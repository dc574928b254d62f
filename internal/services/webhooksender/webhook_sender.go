package webhooksender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// WebhookFailureCode is the code returned when a webhook caused an error
	WebhookFailureCode = -1

	// Default timeout for webhook requests
	defaultWebhookTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	userAgent = "webhook-relay/1.0"
)

// WebhookSender posts notification payloads to a webhook. It makes exactly one
// attempt per call.
type WebhookSender struct {
	client *http.Client
}

// NewWebhookSender creates a new WebhookSender with proper HTTP client configuration
func NewWebhookSender(client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultWebhookTimeout,
		}
	}
	return &WebhookSender{
		client: client,
	}
}

// SendWebhook posts an already encoded JSON body to targetURL.
// Returns error for failures, nil for any 2xx response.
func (w *WebhookSender) SendWebhook(ctx context.Context, targetURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: WebhookFailureCode,
				Err:  fmt.Errorf("invalid URL: %w", urlErr.Err),
			}
		}
		return fmt.Errorf("failed to create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		// url.Error repeats the target URL, which embeds the webhook token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return richerrors.Error{
			Code: WebhookFailureCode,
			Err:  fmt.Errorf("failed to POST to webhook: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read response body for error details (limited size for security)
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: WebhookFailureCode,
			Err:  &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)},
		}
	}

	return nil
}

// StatusError reports a webhook response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status code %d: %s", e.StatusCode, e.Body)
}
