package impl

import (
	"context"
	"testing"
	"time"

	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	mockRepo "promopush/internal/mocks/repository"
	"promopush/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inboxServiceFixtures holds all test dependencies for inbox service tests.
type inboxServiceFixtures struct {
	service      usecase.InboxUsecase
	deliveryRepo *mockRepo.MockDeliveryRepository
}

func createTestInboxService(t *testing.T) inboxServiceFixtures {
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewInboxService(InboxServiceParams{
		DeliveryRepo: deliveryRepo,
		Logger:       newDiscardLogger(),
	})

	return inboxServiceFixtures{
		service:      service,
		deliveryRepo: deliveryRepo,
	}
}

var inboxBase = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return inboxBase.Add(time.Duration(minutes) * time.Minute)
}

func TestInboxService_GetInbox_CollapsesPromotionToNewest(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	promotion := &entity.Promotion{
		ID:        7,
		Title:     "Summer Sale (updated)",
		Text:      ptr("Now 30% off"),
		ImageLink: ptr("https://cdn.example.com/summer.png"),
	}
	records := []*entity.DeliveryRecord{
		{ID: 3, CreatedAt: at(3), Recipient: "a@x.com", Title: "Sale v3", PromotionID: ptr(int64(7)), Promotion: promotion},
		{ID: 2, CreatedAt: at(2), Recipient: "a@x.com", Title: "Sale v2", PromotionID: ptr(int64(7)), Promotion: promotion},
		{ID: 1, CreatedAt: at(1), Recipient: "a@x.com", Title: "Sale v1", PromotionID: ptr(int64(7)), Promotion: promotion},
	}

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(records, nil)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, int64(3), item.RecordID)
	assert.Equal(t, entity.InboxItemRich, item.Kind)
	assert.Equal(t, "Summer Sale (updated)", item.Title)
	assert.Equal(t, "Now 30% off", item.Body)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "https://cdn.example.com/summer.png", *item.ImageURL)
	assert.Equal(t, at(3), item.CreatedAt)
}

func TestInboxService_GetInbox_PlainMessagesNeverDropped(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	promotion := &entity.Promotion{ID: 1, Title: "Promo"}
	records := []*entity.DeliveryRecord{
		{ID: 6, CreatedAt: at(6), Title: "Hello", Body: "Same text", URL: "/a"},
		{ID: 5, CreatedAt: at(5), Title: "Promo", PromotionID: ptr(int64(1)), Promotion: promotion},
		{ID: 4, CreatedAt: at(4), Title: "Hello", Body: "Same text", URL: "/a"},
		{ID: 3, CreatedAt: at(3), Title: "Promo", PromotionID: ptr(int64(1)), Promotion: promotion},
		{ID: 2, CreatedAt: at(2), Title: "Hello", Body: "Same text", URL: "/a"},
	}

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(records, nil)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.NoError(t, err)

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.RecordID)
	}
	assert.Equal(t, []int64{6, 5, 4, 2}, ids)
	assert.Equal(t, entity.InboxItemPlain, items[0].Kind)
	assert.Nil(t, items[0].ImageURL)
	assert.Equal(t, "/a", items[0].URL)
}

func TestInboxService_GetInbox_FieldFallback(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	records := []*entity.DeliveryRecord{
		{
			ID:          2,
			CreatedAt:   at(2),
			Title:       "Record title",
			Body:        "Record body",
			URL:         "/notification",
			PromotionID: ptr(int64(9)),
			Promotion:   &entity.Promotion{ID: 9, Title: "Promo title"},
		},
		{
			ID:          1,
			CreatedAt:   at(1),
			Title:       "Orphan title",
			Body:        "Orphan body",
			URL:         "/deals",
			PromotionID: ptr(int64(10)),
		},
	}

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(records, nil)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 2)

	rich := items[0]
	assert.Equal(t, entity.InboxItemRich, rich.Kind)
	assert.Equal(t, "Promo title", rich.Title)
	assert.Equal(t, "Record body", rich.Body)
	assert.Nil(t, rich.ImageURL, "a promotion without an image has no image, not the record url")
	assert.Equal(t, "/notification", rich.URL)

	orphan := items[1]
	assert.Equal(t, entity.InboxItemPlain, orphan.Kind)
	assert.Equal(t, "Orphan title", orphan.Title)
	assert.Equal(t, "Orphan body", orphan.Body)
	require.NotNil(t, orphan.PromotionID)
	assert.Equal(t, int64(10), *orphan.PromotionID)
}

func TestInboxService_GetInbox_PromotionWithoutTitleKeepsRecordTitle(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	records := []*entity.DeliveryRecord{
		{
			ID:          2,
			CreatedAt:   at(2),
			Title:       "Record title",
			Body:        "Record body",
			URL:         "/notification",
			PromotionID: ptr(int64(4)),
			Promotion:   &entity.Promotion{ID: 4, Text: ptr("Flash deal")},
		},
		{ID: 1, CreatedAt: at(1), Title: "plain", Body: "hello", URL: "/a"},
	}

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(records, nil)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, entity.InboxItemRich, items[0].Kind)
	assert.Equal(t, "Record title", items[0].Title)
	assert.Equal(t, "Flash deal", items[0].Body)
	assert.Equal(t, "plain", items[1].Title)
}

func TestInboxService_GetInbox_Empty(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "new@x.com").Return([]*entity.DeliveryRecord{}, nil)

	items, err := fx.service.GetInbox(ctx, "new@x.com")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestInboxService_GetInbox_StoreFailure(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset by peer")

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(nil, storeErr)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrFetch)
	assert.ErrorIs(t, err, storeErr)
}

func TestInboxService_GetInbox_RejectsUnorderedRecords(t *testing.T) {
	fx := createTestInboxService(t)

	ctx := context.Background()
	records := []*entity.DeliveryRecord{
		{ID: 1, CreatedAt: at(1), Title: "older"},
		{ID: 2, CreatedAt: at(2), Title: "newer"},
	}

	fx.deliveryRepo.EXPECT().FindInbox(ctx, "a@x.com").Return(records, nil)

	items, err := fx.service.GetInbox(ctx, "a@x.com")
	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrFetch)
	assert.ErrorIs(t, err, entity.ErrTimelineOrder)
}

func TestInboxService_GetInbox_EmptyRecipient(t *testing.T) {
	fx := createTestInboxService(t)

	_, err := fx.service.GetInbox(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
