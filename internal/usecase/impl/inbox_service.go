package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/repository"
	"promopush/internal/usecase"

	"go.uber.org/fx"
)

type inboxService struct {
	deliveryRepo repository.DeliveryRepository
	logger       *slog.Logger
}

// InboxServiceParams holds dependencies for InboxService, injected by Fx.
type InboxServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	Logger       *slog.Logger
}

// NewInboxService creates a new inbox reconciler instance
func NewInboxService(params InboxServiceParams) usecase.InboxUsecase {
	return &inboxService{
		deliveryRepo: params.DeliveryRepo,
		logger:       params.Logger,
	}
}

func (s *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetInbox returns display-ready items, newest first, one per promotion plus every plain message.
// The read is all-or-nothing: any store failure yields ErrFetch and no items.
func (s *inboxService) GetInbox(ctx context.Context, recipient string) ([]*entity.InboxItem, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}

	records, err := s.deliveryRepo.FindInbox(ctx, recipient)
	if err != nil {
		s.log(ctx).Error("Failed to read delivery log",
			slog.String("recipient", recipient),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrFetch.WithCause(err)
	}

	timeline, err := entity.NewDeliveryTimeline(records)
	if err != nil {
		s.log(ctx).Error("Delivery log returned records out of order",
			slog.String("recipient", recipient),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrFetch.WithCause(err)
	}

	items := reconcile(timeline)

	s.log(ctx).Debug("Inbox reconciled",
		slog.String("recipient", recipient),
		slog.Int("records", timeline.Len()),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// reconcile keeps the newest record of each promotion and every plain
// record, preserving timeline order.
func reconcile(timeline *entity.DeliveryTimeline) []*entity.InboxItem {
	items := make([]*entity.InboxItem, 0, timeline.Len())
	seen := make(map[int64]struct{})

	timeline.Each(func(record *entity.DeliveryRecord) {
		if record.PromotionID != nil {
			if _, ok := seen[*record.PromotionID]; ok {
				return
			}
			seen[*record.PromotionID] = struct{}{}
		}

		items = append(items, toInboxItem(record))
	})

	return items
}

// toInboxItem resolves display content. Promotion fields win when present
// and fall back one by one to the record's own values; the image is never
// substituted.
func toInboxItem(record *entity.DeliveryRecord) *entity.InboxItem {
	item := &entity.InboxItem{
		RecordID:    record.ID,
		Kind:        entity.InboxItemPlain,
		Title:       record.Title,
		Body:        record.Body,
		URL:         record.URL,
		PromotionID: record.PromotionID,
		CreatedAt:   record.CreatedAt,
	}

	promotion := record.Promotion
	if promotion == nil {
		return item
	}

	item.Kind = entity.InboxItemRich
	if promotion.Title != "" {
		item.Title = promotion.Title
	}
	if promotion.Text != nil {
		item.Body = *promotion.Text
	}
	if promotion.ImageLink != nil && *promotion.ImageLink != "" {
		image := *promotion.ImageLink
		item.ImageURL = &image
	}

	return item
}
