package service

import (
	"context"
)

// PushPayload is the content delivered with every push message.
type PushPayload struct {
	Title    string
	Body     string
	URL      string
	Icon     string
	ImageURL string
}

// PushMessage pairs a device token with its own payload.
type PushMessage struct {
	Token   string
	Payload PushPayload
}

// TokenResult is the transport outcome for one device token.
type TokenResult struct {
	Token   string
	Success bool
	// Error holds the provider's failure detail when Success is false.
	Error string
	// Unregistered is set when the provider reports the token as invalid or
	// no longer registered; such tokens are candidates for pruning.
	Unregistered bool
}

// PushService defines the interface for push notification transports.
// Implementations never wait for the message to be displayed.
type PushService interface {
	// SendMulticast sends the same payload to every token. It returns one
	// result per token in input order; the error is reserved for failures of
	// the call as a whole.
	SendMulticast(ctx context.Context, tokens []string, payload PushPayload) ([]TokenResult, error)

	// SendEach sends individually addressed messages in one call, returning
	// one result per message in input order.
	SendEach(ctx context.Context, messages []PushMessage) ([]TokenResult, error)
}
