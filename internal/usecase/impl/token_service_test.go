package impl

import (
	"context"
	"testing"

	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	mockRepo "promopush/internal/mocks/repository"
	"promopush/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service   usecase.TokenUsecase
	tokenRepo *mockRepo.MockTokenRepository
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	service := NewTokenService(TokenServiceParams{
		TokenRepo: tokenRepo,
		Logger:    newDiscardLogger(),
	})

	return tokenServiceFixtures{
		service:   service,
		tokenRepo: tokenRepo,
	}
}

func TestTokenService_RegisterToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		RegisterToken(ctx, mock.MatchedBy(func(token *entity.DeviceToken) bool {
			return token.Recipient == "a@x.com" && token.Token == "d1" && token.Platform == "android"
		})).
		Return(nil)

	err := fx.service.RegisterToken(ctx, "a@x.com", &usecase.TokenInfo{Token: " d1 ", Platform: "Android"})
	require.NoError(t, err)
}

func TestTokenService_RegisterToken_DefaultsToWeb(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		RegisterToken(ctx, mock.MatchedBy(func(token *entity.DeviceToken) bool {
			return token.Platform == "web"
		})).
		Return(nil)

	err := fx.service.RegisterToken(ctx, "a@x.com", &usecase.TokenInfo{Token: "d1"})
	require.NoError(t, err)
}

func TestTokenService_RegisterToken_IsIdempotent(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	info := &usecase.TokenInfo{Token: "d1", Platform: "web"}

	fx.tokenRepo.EXPECT().
		RegisterToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(nil).
		Twice()

	require.NoError(t, fx.service.RegisterToken(ctx, "a@x.com", info))
	require.NoError(t, fx.service.RegisterToken(ctx, "a@x.com", info))
}

func TestTokenService_RegisterToken_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		info      *usecase.TokenInfo
	}{
		{name: "empty recipient", recipient: " ", info: &usecase.TokenInfo{Token: "d1"}},
		{name: "recipient not an email", recipient: "alice", info: &usecase.TokenInfo{Token: "d1"}},
		{name: "nil info", recipient: "a@x.com", info: nil},
		{name: "empty token", recipient: "a@x.com", info: &usecase.TokenInfo{Token: "  "}},
		{name: "unknown platform", recipient: "b@x.com", info: &usecase.TokenInfo{Token: "d2", Platform: "desktop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTokenService(t)

			err := fx.service.RegisterToken(context.Background(), tt.recipient, tt.info)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestTokenService_RegisterToken_RejectsUnreadablePlatform(t *testing.T) {
	fx := createTestTokenService(t)

	err := fx.service.RegisterToken(context.Background(), "b@x.com", &usecase.TokenInfo{Token: "d2", Platform: "Desktop"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "platform must be one of web android ios", appErr.Details())

	fx.tokenRepo.AssertNotCalled(t, "RegisterToken", mock.Anything, mock.Anything)
}

func TestTokenService_RegisterToken_StorageError(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	storeErr := errors.New("connection refused")

	fx.tokenRepo.EXPECT().
		RegisterToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(storeErr)

	err := fx.service.RegisterToken(ctx, "a@x.com", &usecase.TokenInfo{Token: "d1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenStorage)
	assert.ErrorIs(t, err, storeErr)
}

func TestTokenService_TokensFor_UnknownRecipient(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		FindTokensByRecipient(ctx, "nobody@x.com").
		Return(nil, nil)

	tokens, err := fx.service.TokensFor(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestTokenService_TokensForAll(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	recipients := []string{"a@x.com", "b@x.com", "c@x.com"}
	grouped := map[string][]*entity.DeviceToken{
		"a@x.com": {{Recipient: "a@x.com", Token: "d1"}},
		"c@x.com": {{Recipient: "c@x.com", Token: "d3"}},
	}

	fx.tokenRepo.EXPECT().
		FindTokensByRecipients(ctx, recipients).
		Return(grouped, nil)

	result, err := fx.service.TokensForAll(ctx, recipients)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NotContains(t, result, "b@x.com")
}

func TestTokenService_TokensForAll_Empty(t *testing.T) {
	fx := createTestTokenService(t)

	result, err := fx.service.TokensForAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTokenService_PruneTokens(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		DeleteTokens(ctx, "a@x.com", []string{"d1", "d2"}).
		Return(int64(2), nil)

	removed, err := fx.service.PruneTokens(ctx, "a@x.com", []string{"d1", "d2"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestTokenService_PruneTokens_NothingToDo(t *testing.T) {
	fx := createTestTokenService(t)

	removed, err := fx.service.PruneTokens(context.Background(), "a@x.com", nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestTokenService_PruneTokens_StorageError(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		DeleteTokens(ctx, "a@x.com", []string{"d1"}).
		Return(int64(0), assert.AnError)

	_, err := fx.service.PruneTokens(ctx, "a@x.com", []string{"d1"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenStorage)
	assert.ErrorIs(t, err, assert.AnError)
}
