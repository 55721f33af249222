package usecase

import (
	"context"

	"promopush/internal/domain/entity"
)

// InboxUsecase reconstructs a recipient's inbox from the delivery log
type InboxUsecase interface {
	// GetInbox returns display-ready items, newest first, one per promotion plus every plain message
	GetInbox(ctx context.Context, recipient string) ([]*entity.InboxItem, error)
}
