package usecase

import (
	"context"

	"promopush/internal/domain/entity"
)

// TokenInfo represents device token information for registration
type TokenInfo struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"omitempty,oneof=web android ios"`
}

// TokenUsecase defines the token registry use cases
type TokenUsecase interface {
	// RegisterToken stores a device token for the recipient; re-registering is a no-op
	RegisterToken(ctx context.Context, recipient string, info *TokenInfo) error

	// TokensFor returns the recipient's registered tokens (empty when none)
	TokensFor(ctx context.Context, recipient string) ([]*entity.DeviceToken, error)

	// TokensForAll returns tokens grouped by recipient; recipients without tokens are absent
	TokensForAll(ctx context.Context, recipients []string) (map[string][]*entity.DeviceToken, error)

	// PruneTokens removes tokens the push provider rejected
	PruneTokens(ctx context.Context, recipient string, tokens []string) (int64, error)
}
