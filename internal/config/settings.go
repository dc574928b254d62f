package config

import (
	"fmt"
)

const (
	// ModeBuild composes the notification server-side from raw client telemetry.
	ModeBuild = "build"
	// ModePassthrough forwards a caller-built notification payload unchanged.
	ModePassthrough = "passthrough"

	defaultPort        = 10000
	defaultMonPort     = 8888
	defaultLogLevel    = "info"
	defaultServiceName = "webhook-relay"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// DiscordWebhookURL is the secret downstream destination. It may be empty;
	// the relay then fails each request instead of refusing to start.
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`
	RelayMode         string `env:"RELAY_MODE"`
}

// ApplyDefaults fills unset fields and validates the relay mode.
func (s *Settings) ApplyDefaults() error {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.RelayMode == "" {
		s.RelayMode = ModeBuild
	}
	switch s.RelayMode {
	case ModeBuild, ModePassthrough:
	default:
		return fmt.Errorf("invalid relay mode %q, must be %q or %q", s.RelayMode, ModeBuild, ModePassthrough)
	}
	return nil
}
