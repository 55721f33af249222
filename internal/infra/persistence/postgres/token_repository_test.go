package postgres

import (
	"context"
	"testing"

	"promopush/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_RegisterToken_IsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	token := &entity.DeviceToken{Recipient: "a@x.com", Token: "d1", Platform: "web"}
	require.NoError(t, repo.RegisterToken(ctx, token))
	require.NoError(t, repo.RegisterToken(ctx, &entity.DeviceToken{Recipient: "a@x.com", Token: "d1", Platform: "web"}))

	tokens, err := repo.FindTokensByRecipient(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "d1", tokens[0].Token)
	assert.False(t, tokens[0].CreatedAt.IsZero())
}

func TestTokenRepository_SameTokenDifferentRecipients(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.RegisterToken(ctx, &entity.DeviceToken{Recipient: "a@x.com", Token: "shared", Platform: "web"}))
	require.NoError(t, repo.RegisterToken(ctx, &entity.DeviceToken{Recipient: "b@x.com", Token: "shared", Platform: "web"}))

	grouped, err := repo.FindTokensByRecipients(ctx, []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)
	assert.Len(t, grouped["a@x.com"], 1)
	assert.Len(t, grouped["b@x.com"], 1)
}

func TestTokenRepository_FindTokensByRecipient_Unknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)

	tokens, err := repo.FindTokensByRecipient(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestTokenRepository_FindTokensByRecipients_OmitsRecipientsWithoutTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	for _, token := range []*entity.DeviceToken{
		{Recipient: "a@x.com", Token: "d1", Platform: "web", CreatedAt: minutesAfterEpoch(1)},
		{Recipient: "a@x.com", Token: "d2", Platform: "android", CreatedAt: minutesAfterEpoch(2)},
		{Recipient: "c@x.com", Token: "d3", Platform: "ios", CreatedAt: minutesAfterEpoch(3)},
	} {
		require.NoError(t, repo.RegisterToken(ctx, token))
	}

	grouped, err := repo.FindTokensByRecipients(ctx, []string{"a@x.com", "b@x.com", "c@x.com"})
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.NotContains(t, grouped, "b@x.com")
	assert.Equal(t, []string{"d1", "d2"}, entity.UniqueTokens(grouped["a@x.com"]))
	assert.Equal(t, "ios", grouped["c@x.com"][0].Platform)
}

func TestTokenRepository_DeleteTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	for _, token := range []string{"d1", "d2", "d3"} {
		require.NoError(t, repo.RegisterToken(ctx, &entity.DeviceToken{Recipient: "a@x.com", Token: token, Platform: "web"}))
	}
	require.NoError(t, repo.RegisterToken(ctx, &entity.DeviceToken{Recipient: "b@x.com", Token: "d1", Platform: "web"}))

	removed, err := repo.DeleteTokens(ctx, "a@x.com", []string{"d1", "d3", "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := repo.FindTokensByRecipient(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"d2"}, entity.UniqueTokens(remaining))

	other, err := repo.FindTokensByRecipient(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
