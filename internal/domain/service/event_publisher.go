package service

import (
	"context"
)

// TokenInvalidationEvent reports tokens the push provider rejected as
// invalid or unregistered, for asynchronous removal from the token registry.
type TokenInvalidationEvent struct {
	EventID   string   `json:"event_id"`
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	Recipient string   `json:"recipient" validate:"required,email"`
	Tokens    []string `json:"tokens" validate:"required,min=1,dive,required"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTokenInvalidation publishes an invalidation event for async processing
	PublishTokenInvalidation(ctx context.Context, event *TokenInvalidationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
