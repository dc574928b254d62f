package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_ApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty settings get defaults", func(t *testing.T) {
		var s Settings
		require.NoError(t, s.ApplyDefaults())

		assert.Equal(t, 10000, s.Port)
		assert.Equal(t, 8888, s.MonPort)
		assert.Equal(t, "info", s.LogLevel)
		assert.Equal(t, "webhook-relay", s.ServiceName)
		assert.Equal(t, ModeBuild, s.RelayMode)
		assert.Empty(t, s.DiscordWebhookURL)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		s := Settings{
			Port:              3000,
			MonPort:           3001,
			LogLevel:          "debug",
			ServiceName:       "relay",
			RelayMode:         ModePassthrough,
			DiscordWebhookURL: "https://discord.example/api/webhooks/1/abc",
		}
		require.NoError(t, s.ApplyDefaults())

		assert.Equal(t, 3000, s.Port)
		assert.Equal(t, 3001, s.MonPort)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, "relay", s.ServiceName)
		assert.Equal(t, ModePassthrough, s.RelayMode)
		assert.Equal(t, "https://discord.example/api/webhooks/1/abc", s.DiscordWebhookURL)
	})

	t.Run("unknown relay mode", func(t *testing.T) {
		s := Settings{RelayMode: "mirror"}
		err := s.ApplyDefaults()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mirror")
	})
}
