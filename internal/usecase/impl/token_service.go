// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/constants"
	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/repository"
	"promopush/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenValidator enforces the same constraints the store checks when rows are read back.
var tokenValidator = validator.New(validator.WithRequiredStructEnabled())

type tokenService struct {
	tokenRepo repository.TokenRepository
	logger    *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TokenRepo repository.TokenRepository
	Logger    *slog.Logger
}

// NewTokenService creates a new token registry service instance
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return &tokenService{
		tokenRepo: params.TokenRepo,
		logger:    params.Logger,
	}
}

func (s *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterToken stores a device token for the recipient; re-registering is a no-op
func (s *tokenService) RegisterToken(ctx context.Context, recipient string, info *usecase.TokenInfo) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}
	if info == nil || strings.TrimSpace(info.Token) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	platform := strings.ToLower(strings.TrimSpace(info.Platform))
	if platform == "" {
		platform = constants.PlatformWeb
	}

	token := &entity.DeviceToken{
		Recipient: recipient,
		Token:     strings.TrimSpace(info.Token),
		Platform:  platform,
	}
	if err := tokenValidator.Struct(token); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(invalidTokenDetail(err))
	}

	if err := s.tokenRepo.RegisterToken(ctx, token); err != nil {
		return domainerrors.ErrTokenStorage.WithCause(err)
	}

	s.log(ctx).Debug("Device token registered",
		slog.String("recipient", recipient),
		slog.String("platform", platform),
	)

	return nil
}

// TokensFor returns the recipient's registered tokens (empty when none)
func (s *tokenService) TokensFor(ctx context.Context, recipient string) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindTokensByRecipient(ctx, recipient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by recipient")
	}
	if tokens == nil {
		tokens = []*entity.DeviceToken{}
	}

	return tokens, nil
}

// TokensForAll returns tokens grouped by recipient; recipients without tokens are absent
func (s *tokenService) TokensForAll(ctx context.Context, recipients []string) (map[string][]*entity.DeviceToken, error) {
	if len(recipients) == 0 {
		return map[string][]*entity.DeviceToken{}, nil
	}

	grouped, err := s.tokenRepo.FindTokensByRecipients(ctx, recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by recipients")
	}

	return grouped, nil
}

// PruneTokens removes tokens the push provider rejected
func (s *tokenService) PruneTokens(ctx context.Context, recipient string, tokens []string) (int64, error) {
	if recipient == "" || len(tokens) == 0 {
		return 0, nil
	}

	removed, err := s.tokenRepo.DeleteTokens(ctx, recipient, tokens)
	if err != nil {
		return 0, domainerrors.ErrTokenStorage.WithCause(err)
	}

	s.log(ctx).Info("Pruned stale device tokens",
		slog.String("recipient", recipient),
		slog.Int("requested", len(tokens)),
		slog.Int64("removed", removed),
	)

	return removed, nil
}

func invalidTokenDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid device token"
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Recipient":
		return "recipient must be an email"
	case "Platform":
		return "platform must be one of " + fe.Param()
	default:
		return strings.ToLower(fe.Field()) + " is invalid"
	}
}
