package impl

import (
	"context"
	"log/slog"

	"promopush/config"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/repository"
	"promopush/internal/domain/service"
	"promopush/internal/errors"
	"promopush/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type adminService struct {
	deliveryRepo  repository.DeliveryRepository
	promotionRepo repository.PromotionRepository
	recipientRepo repository.RecipientRepository
	tokenRepo     repository.TokenRepository
	authorizer    service.Authorizer
	historyLimit  int
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	DeliveryRepo  repository.DeliveryRepository
	PromotionRepo repository.PromotionRepository
	RecipientRepo repository.RecipientRepository
	TokenRepo     repository.TokenRepository
	Authorizer    service.Authorizer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminService creates a new admin console service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	historyLimit := defaultHistoryLimit
	if params.Config != nil && params.Config.Push != nil && params.Config.Push.HistoryLimit > 0 {
		historyLimit = params.Config.Push.HistoryLimit
	}

	return &adminService{
		deliveryRepo:  params.DeliveryRepo,
		promotionRepo: params.PromotionRepo,
		recipientRepo: params.RecipientRepo,
		tokenRepo:     params.TokenRepo,
		authorizer:    params.Authorizer,
		historyLimit:  historyLimit,
		logger:        params.Logger,
	}
}

func (s *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *adminService) authorize(ctx context.Context, actor string) error {
	if actor == "" {
		return domainerrors.ErrUnauthorized
	}
	if !s.authorizer.IsAdmin(ctx, actor) {
		s.log(ctx).Warn("Admin view rejected for non-admin actor", slog.String("actor", actor))

		return domainerrors.ErrForbidden
	}

	return nil
}

// GetDispatchHistory lists delivery records of all recipients, newest first
func (s *adminService) GetDispatchHistory(ctx context.Context, actor string, limit, offset int) ([]*entity.DeliveryRecord, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.deliveryRepo.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, domainerrors.ErrFetch.WithCause(err)
	}

	return records, nil
}

// ListReachableRecipients lists recipients with at least one registered token
func (s *adminService) ListReachableRecipients(ctx context.Context, actor string) ([]*entity.Recipient, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}

	recipients, err := s.recipientRepo.ListRecipients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}
	if len(recipients) == 0 {
		return []*entity.Recipient{}, nil
	}

	emails := make([]string, 0, len(recipients))
	for _, r := range recipients {
		emails = append(emails, r.Email)
	}

	grouped, err := s.tokenRepo.FindTokensByRecipients(ctx, emails)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by recipients")
	}

	reachable := make([]*entity.Recipient, 0, len(grouped))
	for _, r := range recipients {
		if len(grouped[r.Email]) > 0 {
			reachable = append(reachable, r)
		}
	}

	return reachable, nil
}

// ListPromotions lists promotions available for linking, newest first
func (s *adminService) ListPromotions(ctx context.Context, actor string) ([]*entity.Promotion, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}

	promotions, err := s.promotionRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promotions, nil
}
