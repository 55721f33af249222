// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"promopush/internal/domain/entity"
)

// TokenRepository is the token registry: device tokens keyed by recipient.
type TokenRepository interface {
	// RegisterToken stores the token for the recipient. Registering an
	// existing (recipient, token) pair is a no-op and returns nil.
	RegisterToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokensByRecipient returns the recipient's tokens, oldest first.
	// An unknown recipient yields an empty slice.
	FindTokensByRecipient(ctx context.Context, recipient string) ([]*entity.DeviceToken, error)

	// FindTokensByRecipients returns tokens grouped by recipient.
	// Recipients without tokens are absent from the map.
	FindTokensByRecipients(ctx context.Context, recipients []string) (map[string][]*entity.DeviceToken, error)

	// DeleteTokens removes the given tokens of a recipient and returns how many rows were removed.
	DeleteTokens(ctx context.Context, recipient string, tokens []string) (int64, error)
}
