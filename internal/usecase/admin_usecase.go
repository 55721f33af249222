package usecase

import (
	"context"

	"promopush/internal/domain/entity"
)

// AdminUsecase groups the read-only views of the admin console
type AdminUsecase interface {
	// GetDispatchHistory lists delivery records of all recipients, newest first
	GetDispatchHistory(ctx context.Context, actor string, limit, offset int) ([]*entity.DeliveryRecord, error)

	// ListReachableRecipients lists recipients with at least one registered token
	ListReachableRecipients(ctx context.Context, actor string) ([]*entity.Recipient, error)

	// ListPromotions lists promotions available for linking, newest first
	ListPromotions(ctx context.Context, actor string) ([]*entity.Promotion, error)
}
