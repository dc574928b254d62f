package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/webhook-relay/internal/services/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var errMissingWebhookURL = errors.New("missing webhook URL: DISCORD_WEBHOOK_URL is not set")

// WebhookSender delivers an encoded notification to the webhook.
type WebhookSender interface {
	SendWebhook(ctx context.Context, targetURL string, body []byte) error
}

// RelayController forwards inbound notifications to the configured webhook.
type RelayController struct {
	webhookURL string
	composer   notification.Composer
	sender     WebhookSender
}

// NewRelayController creates a new RelayController. An empty webhookURL is
// accepted; every relay request then fails with a configuration error.
func NewRelayController(webhookURL string, composer notification.Composer, sender WebhookSender) *RelayController {
	return &RelayController{
		webhookURL: webhookURL,
		composer:   composer,
		sender:     sender,
	}
}

// Relay godoc
// @Summary      Relay a notification
// @Description  Composes a notification from the request and posts it to the webhook. A single delivery attempt is made.
// @Tags         Relay
// @Accept       json
// @Produce      json
// @Success      200  "Notification delivered"
// @Failure      400  "Invalid payload"
// @Failure      413  "Payload too large"
// @Failure      500  "Configuration error or delivery failure"
// @Failure      502  "Delivery failure (pass-through mode)"
// @Router       /submit [post]
// @Router       /log [post]
func (r *RelayController) Relay(c *fiber.Ctx) error {
	mode := r.composer.Mode()

	if r.webhookURL == "" {
		recordOutcome(mode, outcomeUnconfigured)
		return richerrors.Error{
			ExternalMsg: "Server configuration error.",
			Err:         errMissingWebhookURL,
			Code:        fiber.StatusInternalServerError,
		}
	}

	body, err := r.composer.Compose(notification.Request{
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Body:      c.Body(),
	})
	if err != nil {
		if errors.Is(err, notification.ErrInvalidPayload) {
			recordOutcome(mode, outcomeInvalid)
			return richerrors.Error{
				ExternalMsg: "Invalid payload.",
				Err:         err,
				Code:        fiber.StatusBadRequest,
			}
		}
		recordOutcome(mode, outcomeError)
		return richerrors.Error{
			ExternalMsg: "Internal server error.",
			Err:         fmt.Errorf("failed to compose notification: %w", err),
			Code:        fiber.StatusInternalServerError,
		}
	}

	relayID := uuid.NewString()
	if err := r.sender.SendWebhook(c.UserContext(), r.webhookURL, body); err != nil {
		recordOutcome(mode, outcomeRejected)
		return richerrors.Error{
			ExternalMsg: "Internal server error.",
			Err:         fmt.Errorf("relay %s (%s mode): webhook delivery failed: %w", relayID, mode, err),
			Code:        r.composer.FailureStatus(),
		}
	}

	recordOutcome(mode, outcomeDelivered)
	zerolog.Ctx(c.UserContext()).Debug().
		Str("relayId", relayID).
		Str("mode", mode).
		Int("payloadBytes", len(body)).
		Msg("notification delivered to webhook")

	return c.Status(fiber.StatusOK).JSON(r.composer.SuccessResponse())
}
