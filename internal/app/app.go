package app

import (
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/webhook-relay/internal/config"
	"github.com/DIMO-Network/webhook-relay/internal/controllers/relay"
	"github.com/DIMO-Network/webhook-relay/internal/services/notification"
	"github.com/DIMO-Network/webhook-relay/internal/services/webhooksender"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
)

// bodyLimit caps inbound JSON bodies.
const bodyLimit = 100 * 1024

// CreateServers builds the relay's API server from settings.
func CreateServers(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	composer, err := notification.NewComposer(settings.RelayMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification composer: %w", err)
	}
	if settings.DiscordWebhookURL == "" {
		logger.Error().Msg("missing webhook URL: DISCORD_WEBHOOK_URL is not set, relay requests will fail")
	}

	sender := webhooksender.NewWebhookSender(nil)
	relayController := relay.NewRelayController(settings.DiscordWebhookURL, composer, sender)

	return CreateFiberApp(logger, relayController, composer.Mode()), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, relayController *relay.RelayController, mode string) *fiber.App {
	logger.Info().Str("mode", mode).Msg("Starting webhook relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		// The relay runs behind a reverse proxy; the caller is the left-most valid forwarded address.
		ProxyHeader:        fiber.HeaderXForwardedFor,
		EnableIPValidation: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Webhook relay is running.")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	logger.Info().Msg("Registering routes...")
	app.Post("/submit", relayController.Relay)
	app.Post("/log", relayController.Relay)

	return app
}
