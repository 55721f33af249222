package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"promopush/config"

	"github.com/stretchr/testify/assert"
)

func TestConfigAuthorizer_IsAdmin(t *testing.T) {
	authorizer := NewConfigAuthorizer(AuthorizerParams{
		Config: &config.Config{Admin: &config.AdminConfig{Emails: []string{" Admin@Example.com ", ""}}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	assert.True(t, authorizer.IsAdmin(ctx, "admin@example.com"))
	assert.True(t, authorizer.IsAdmin(ctx, "ADMIN@example.com"))
	assert.False(t, authorizer.IsAdmin(ctx, "a@x.com"))
	assert.False(t, authorizer.IsAdmin(ctx, ""))
}

func TestConfigAuthorizer_NoAdmins(t *testing.T) {
	authorizer := NewConfigAuthorizer(AuthorizerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.False(t, authorizer.IsAdmin(context.Background(), "admin@example.com"))
}
