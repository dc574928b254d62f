package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/webhook-relay/internal/config"
)

const (
	// UnknownValue replaces any telemetry value the caller did not send.
	UnknownValue = "Unknown"

	embedTitle  = "🎯 New Visitor Signal"
	embedColor  = 3447003
	embedFooter = "Signal processed by webhook-relay"

	// ISO-8601 with millisecond precision; always UTC so the zone renders as Z.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// BuildResponse is returned to the caller after a successful build-mode relay.
type BuildResponse struct {
	Message string `json:"message"`
}

// BuildComposer builds a single-embed notification from raw client telemetry.
type BuildComposer struct {
	now func() time.Time
}

// NewBuildComposer creates a BuildComposer. now supplies the embed timestamp.
func NewBuildComposer(now func() time.Time) *BuildComposer {
	if now == nil {
		now = time.Now
	}
	return &BuildComposer{now: now}
}

// Mode implements Composer.
func (b *BuildComposer) Mode() string { return config.ModeBuild }

// FailureStatus implements Composer.
func (b *BuildComposer) FailureStatus() int { return http.StatusInternalServerError }

// SuccessResponse implements Composer.
func (b *BuildComposer) SuccessResponse() any {
	return BuildResponse{Message: "Data received successfully."}
}

// Compose implements Composer.
func (b *BuildComposer) Compose(req Request) ([]byte, error) {
	embed, err := b.BuildEmbed(req)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(Payload{Embeds: []Embed{embed}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return body, nil
}

// BuildEmbed creates the embed describing the caller.
func (b *BuildComposer) BuildEmbed(req Request) (Embed, error) {
	telemetry, err := parseTelemetry(req.Body)
	if err != nil {
		return Embed{}, err
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = UnknownValue
	}

	fingerprint := fmt.Sprintf("Platform: %s | Lang: %s | Screen: %s",
		renderValue(telemetry["platform"]),
		renderValue(telemetry["language"]),
		renderValue(telemetry["screen"]),
	)

	return Embed{
		Title:     embedTitle,
		Color:     embedColor,
		Timestamp: b.now().UTC().Format(timestampLayout),
		Footer:    Footer{Text: embedFooter},
		Fields: []Field{
			{Name: "IP Address", Value: code(req.IP), Inline: true},
			{Name: "User Agent", Value: code(userAgent), Inline: false},
			{Name: "System Fingerprint", Value: code(fingerprint), Inline: false},
		},
	}, nil
}

// parseTelemetry decodes the inbound body. An empty body is an empty object
// and a JSON array carries no named fields.
func parseTelemetry(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	switch trimmed[0] {
	case '{':
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		return map[string]json.RawMessage{}, nil
	default:
		return nil, fmt.Errorf("%w: body is not a JSON object or array", ErrInvalidPayload)
	}
	var telemetry map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &telemetry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return telemetry, nil
}

// renderValue prints strings unquoted and any other JSON value as its JSON text.
func renderValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return UnknownValue
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func code(s string) string {
	return "`" + s + "`"
}
