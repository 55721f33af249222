package usecase

import (
	"context"

	"promopush/internal/domain/entity"
)

// SendToOneInput is a message addressed to a single recipient
type SendToOneInput struct {
	Recipient   string `json:"recipient" validate:"required,email"`
	Title       string `json:"title" validate:"required_without=PromotionID"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	PromotionID *int64 `json:"promotion_id,omitempty" validate:"omitempty,gt=0"`
}

// SendToAllInput is a message broadcast to every recipient with a device.
// BodyTemplate may contain the {name} placeholder.
type SendToAllInput struct {
	Title        string `json:"title" validate:"required_without=PromotionID"`
	BodyTemplate string `json:"body_template"`
	URL          string `json:"url"`
	PromotionID  *int64 `json:"promotion_id,omitempty" validate:"omitempty,gt=0"`
}

// DispatchUsecase is the fan-out engine. The actor is the authenticated
// caller and must be an admin.
type DispatchUsecase interface {
	// SendToOne logs one delivery record and pushes to every device of the recipient
	SendToOne(ctx context.Context, actor string, input *SendToOneInput) (*entity.DispatchResult, error)

	// SendToAll logs one personalized record per reachable recipient and pushes to all their devices
	SendToAll(ctx context.Context, actor string, input *SendToAllInput) (*entity.BroadcastResult, error)
}
