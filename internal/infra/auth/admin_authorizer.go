package auth

import (
	"context"
	"log/slog"
	"strings"

	"promopush/config"
	"promopush/internal/domain/service"

	"go.uber.org/fx"
)

// configAuthorizer grants admin rights to the emails listed in admin.emails.
type configAuthorizer struct {
	admins map[string]struct{}
}

// AuthorizerParams holds dependencies for the admin authorizer, injected by Fx.
type AuthorizerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func NewConfigAuthorizer(params AuthorizerParams) service.Authorizer {
	admins := make(map[string]struct{})
	if params.Config.Admin != nil {
		for _, email := range params.Config.Admin.Emails {
			email = normalizeEmail(email)
			if email == "" {
				continue
			}
			admins[email] = struct{}{}
		}
	}

	if len(admins) == 0 {
		params.Logger.Warn("No admin emails configured, dispatch endpoints will reject every caller")
	}

	return &configAuthorizer{admins: admins}
}

func (a *configAuthorizer) IsAdmin(_ context.Context, recipient string) bool {
	_, ok := a.admins[normalizeEmail(recipient)]

	return ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
