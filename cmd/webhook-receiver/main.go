// Command webhook-receiver is a local stand-in for the chat service webhook.
// Point DISCORD_WEBHOOK_URL at it to watch what the relay sends.
package main

import (
	"flag"
	"net/http"
	"os"
	"strconv"

	"github.com/DIMO-Network/webhook-relay/internal/services/notification"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

func main() {
	port := flag.Int("port", 4001, "port to listen on")
	status := flag.Int("status", http.StatusNoContent, "status code to answer with")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/*", func(c *fiber.Ctx) error {
		var payload notification.Payload
		if err := c.BodyParser(&payload); err != nil {
			logger.Warn().Err(err).Bytes("body", c.Body()).Msg("Received non-notification payload")
			return c.SendStatus(fiber.StatusBadRequest)
		}
		for _, embed := range payload.Embeds {
			event := logger.Info().Str("path", c.Path()).Str("title", embed.Title).Str("timestamp", embed.Timestamp)
			for _, field := range embed.Fields {
				event = event.Str(field.Name, field.Value)
			}
			event.Msg("Webhook received embed")
		}
		return c.SendStatus(*status)
	})

	logger.Info().Msgf("Webhook receiver listening on http://localhost:%d", *port)
	if err := app.Listen(":" + strconv.Itoa(*port)); err != nil {
		logger.Fatal().Err(err).Msg("Receiver failed")
	}
}
