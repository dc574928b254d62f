package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/DIMO-Network/webhook-relay/internal/config"
)

// ErrInvalidPayload is returned when the inbound body cannot be turned into a notification.
var ErrInvalidPayload = errors.New("invalid payload")

// Request is the part of an inbound relay request a composer may use.
type Request struct {
	// IP is the caller address, already resolved through any trusted proxy.
	IP string
	// UserAgent is the raw User-Agent header value.
	UserAgent string
	// Body is the raw inbound JSON body.
	Body []byte
}

// Composer turns an inbound request into the JSON body posted to the webhook.
// An instance uses exactly one Composer for its lifetime.
type Composer interface {
	// Mode is the relay mode name used in logs and metrics.
	Mode() string
	// Compose returns the outbound JSON body or an error wrapping ErrInvalidPayload.
	Compose(req Request) ([]byte, error)
	// FailureStatus is the HTTP status returned when the downstream call fails.
	FailureStatus() int
	// SuccessResponse is the JSON body returned when the downstream call succeeds.
	SuccessResponse() any
}

// NewComposer returns the composer for the given relay mode.
func NewComposer(mode string) (Composer, error) {
	switch mode {
	case config.ModeBuild:
		return NewBuildComposer(time.Now), nil
	case config.ModePassthrough:
		return NewPassthroughComposer(), nil
	default:
		return nil, fmt.Errorf("unknown relay mode %q", mode)
	}
}
