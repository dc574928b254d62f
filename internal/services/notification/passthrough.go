package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DIMO-Network/webhook-relay/internal/config"
)

// PassthroughResponse is returned to the caller after a successful pass-through relay.
type PassthroughResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PassthroughComposer forwards a caller-built notification payload unchanged.
// The only check made is that the payload has a non-null embeds key.
type PassthroughComposer struct{}

// NewPassthroughComposer creates a PassthroughComposer.
func NewPassthroughComposer() *PassthroughComposer {
	return &PassthroughComposer{}
}

// Mode implements Composer.
func (p *PassthroughComposer) Mode() string { return config.ModePassthrough }

// FailureStatus implements Composer.
func (p *PassthroughComposer) FailureStatus() int { return http.StatusBadGateway }

// SuccessResponse implements Composer.
func (p *PassthroughComposer) SuccessResponse() any {
	return PassthroughResponse{Success: true, Message: "Notification relayed."}
}

// Compose implements Composer.
func (p *PassthroughComposer) Compose(req Request) ([]byte, error) {
	trimmed := bytes.TrimSpace(req.Body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrInvalidPayload)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if embeds, ok := fields["embeds"]; !ok || string(embeds) == "null" {
		return nil, fmt.Errorf("%w: missing embeds", ErrInvalidPayload)
	}
	return req.Body, nil
}
