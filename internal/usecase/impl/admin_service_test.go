package impl

import (
	"context"
	"testing"

	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	mockRepo "promopush/internal/mocks/repository"
	mockSvc "promopush/internal/mocks/service"
	"promopush/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service       usecase.AdminUsecase
	deliveryRepo  *mockRepo.MockDeliveryRepository
	promotionRepo *mockRepo.MockPromotionRepository
	recipientRepo *mockRepo.MockRecipientRepository
	tokenRepo     *mockRepo.MockTokenRepository
	authorizer    *mockSvc.MockAuthorizer
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	f := adminServiceFixtures{
		deliveryRepo:  mockRepo.NewMockDeliveryRepository(t),
		promotionRepo: mockRepo.NewMockPromotionRepository(t),
		recipientRepo: mockRepo.NewMockRecipientRepository(t),
		tokenRepo:     mockRepo.NewMockTokenRepository(t),
		authorizer:    mockSvc.NewMockAuthorizer(t),
	}
	f.service = NewAdminService(AdminServiceParams{
		DeliveryRepo:  f.deliveryRepo,
		PromotionRepo: f.promotionRepo,
		RecipientRepo: f.recipientRepo,
		TokenRepo:     f.tokenRepo,
		Authorizer:    f.authorizer,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestAdminService_GetDispatchHistory_DefaultLimit(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()
	records := []*entity.DeliveryRecord{{ID: 2}, {ID: 1}}

	f.authorizer.EXPECT().IsAdmin(ctx, testAdmin).Return(true)
	f.deliveryRepo.EXPECT().FindRecent(ctx, 20, 0).Return(records, nil)

	got, err := f.service.GetDispatchHistory(ctx, testAdmin, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestAdminService_GetDispatchHistory_CapsLimit(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()

	f.authorizer.EXPECT().IsAdmin(ctx, testAdmin).Return(true)
	f.deliveryRepo.EXPECT().FindRecent(ctx, maxHistoryLimit, 10).Return([]*entity.DeliveryRecord{}, nil)

	_, err := f.service.GetDispatchHistory(ctx, testAdmin, 10_000, 10)
	require.NoError(t, err)
}

func TestAdminService_GetDispatchHistory_StoreFailure(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()

	f.authorizer.EXPECT().IsAdmin(ctx, testAdmin).Return(true)
	f.deliveryRepo.EXPECT().FindRecent(ctx, 20, 0).Return(nil, errors.New("timeout"))

	_, err := f.service.GetDispatchHistory(ctx, testAdmin, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFetch)
}

func TestAdminService_ListReachableRecipients(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()
	recipients := []*entity.Recipient{
		{Email: "a@x.com", DisplayName: "Alice"},
		{Email: "b@x.com", DisplayName: "Bob"},
		{Email: "c@x.com", DisplayName: "Carol"},
	}

	f.authorizer.EXPECT().IsAdmin(ctx, testAdmin).Return(true)
	f.recipientRepo.EXPECT().ListRecipients(ctx).Return(recipients, nil)
	f.tokenRepo.EXPECT().
		FindTokensByRecipients(ctx, []string{"a@x.com", "b@x.com", "c@x.com"}).
		Return(map[string][]*entity.DeviceToken{
			"b@x.com": deviceTokens("b@x.com", "d2"),
		}, nil)

	got, err := f.service.ListReachableRecipients(ctx, testAdmin)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b@x.com", got[0].Email)
}

func TestAdminService_ListPromotions(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()
	promotions := []*entity.Promotion{{ID: 2, Title: "Newer"}, {ID: 1, Title: "Older"}}

	f.authorizer.EXPECT().IsAdmin(ctx, testAdmin).Return(true)
	f.promotionRepo.EXPECT().List(ctx).Return(promotions, nil)

	got, err := f.service.ListPromotions(ctx, testAdmin)
	require.NoError(t, err)
	assert.Equal(t, promotions, got)
}

func TestAdminService_RejectsNonAdmin(t *testing.T) {
	f := createTestAdminService(t)

	ctx := context.Background()

	f.authorizer.EXPECT().IsAdmin(ctx, "a@x.com").Return(false).Times(3)

	_, err := f.service.GetDispatchHistory(ctx, "a@x.com", 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.service.ListReachableRecipients(ctx, "a@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.service.ListPromotions(ctx, "a@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
