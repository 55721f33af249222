package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"promopush/config"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/constants"
	"promopush/internal/domain/entity"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/repository"
	"promopush/internal/domain/service"
	"promopush/internal/errors"
	"promopush/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPushTimeout     = 10 * time.Second
	transportFailureDetail = "push transport failed"
)

type dispatchService struct {
	tokens        usecase.TokenUsecase
	deliveryRepo  repository.DeliveryRepository
	promotionRepo repository.PromotionRepository
	recipientRepo repository.RecipientRepository
	txManager     repository.TransactionManager
	pushSvc       service.PushService
	publisher     service.EventPublisher
	authorizer    service.Authorizer
	pushCfg       config.PushConfig
	logger        *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	Tokens        usecase.TokenUsecase
	DeliveryRepo  repository.DeliveryRepository
	PromotionRepo repository.PromotionRepository
	RecipientRepo repository.RecipientRepository
	TxManager     repository.TransactionManager
	PushSvc       service.PushService
	Publisher     service.EventPublisher `optional:"true"`
	Authorizer    service.Authorizer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDispatchService creates a new fan-out engine instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	pushCfg := config.PushConfig{}
	if params.Config != nil && params.Config.Push != nil {
		pushCfg = *params.Config.Push
	}
	if pushCfg.Timeout <= 0 {
		pushCfg.Timeout = defaultPushTimeout
	}
	if pushCfg.Icon == "" {
		pushCfg.Icon = constants.DefaultNotificationIcon
	}
	if pushCfg.DefaultURL == "" {
		pushCfg.DefaultURL = constants.DefaultNotificationURL
	}

	return &dispatchService{
		tokens:        params.Tokens,
		deliveryRepo:  params.DeliveryRepo,
		promotionRepo: params.PromotionRepo,
		recipientRepo: params.RecipientRepo,
		txManager:     params.TxManager,
		pushSvc:       params.PushSvc,
		publisher:     params.Publisher,
		authorizer:    params.Authorizer,
		pushCfg:       pushCfg,
		logger:        params.Logger,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// content is the resolved title, body and link of an outgoing message.
type content struct {
	title    string
	body     string
	url      string
	imageURL string
}

// SendToOne logs one delivery record, then pushes to every device of the recipient.
// Nothing is pushed unless the record was written.
func (s *dispatchService) SendToOne(ctx context.Context, actor string, input *usecase.SendToOneInput) (*entity.DispatchResult, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Recipient) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}

	msg, err := s.resolveContent(ctx, input.Title, input.Body, input.URL, input.PromotionID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.tokens.TokensFor(ctx, input.Recipient)
	if err != nil {
		return nil, err
	}
	unique := entity.UniqueTokens(tokens)
	if len(unique) == 0 {
		return nil, domainerrors.ErrNoTokens
	}

	record := &entity.DeliveryRecord{
		Recipient:   input.Recipient,
		Title:       msg.title,
		Body:        msg.body,
		URL:         msg.url,
		PromotionID: input.PromotionID,
	}
	if err := s.deliveryRepo.CreateRecord(ctx, record); err != nil {
		s.log(ctx).Error("Failed to write delivery record, push aborted",
			slog.String("recipient", input.Recipient),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrLogWrite.WithCause(err)
	}

	payload := s.payload(msg, msg.body)

	pushCtx, cancel := context.WithTimeout(ctx, s.pushCfg.Timeout)
	defer cancel()

	results, pushErr := s.pushSvc.SendMulticast(pushCtx, unique, payload)
	if pushErr != nil {
		s.log(ctx).Warn("Push transport failed, delivery record kept",
			slog.String("recipient", input.Recipient),
			slog.Int64("record_id", record.ID),
			slog.Any("error", pushErr),
		)
	}

	owners := make([]string, len(unique))
	for i := range owners {
		owners[i] = input.Recipient
	}

	result := aggregate(unique, owners, results, pushErr)
	result.RecordIDs = []int64{record.ID}

	s.log(ctx).Info("Notification dispatched",
		slog.String("recipient", input.Recipient),
		slog.Int64("record_id", record.ID),
		slog.Int("requested", result.Requested),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)

	s.publishInvalidTokens(ctx, result)

	return result, nil
}

// SendToAll logs one personalized record per reachable recipient in a single
// atomic write, then pushes to every device of those recipients.
func (s *dispatchService) SendToAll(ctx context.Context, actor string, input *usecase.SendToAllInput) (*entity.BroadcastResult, error) {
	if err := s.authorize(ctx, actor); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("input is required")
	}

	template := input.BodyTemplate
	if strings.TrimSpace(template) == "" {
		template = constants.DefaultBroadcastBody
	}

	msg, err := s.resolveContent(ctx, input.Title, template, input.URL, input.PromotionID)
	if err != nil {
		return nil, err
	}

	recipients, err := s.recipientRepo.ListRecipients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}

	emails := make([]string, 0, len(recipients))
	for _, r := range recipients {
		emails = append(emails, r.Email)
	}

	grouped, err := s.tokens.TokensForAll(ctx, emails)
	if err != nil {
		return nil, err
	}

	var (
		records  []*entity.DeliveryRecord
		messages []service.PushMessage
		tokens   []string
		owners   []string
	)
	for _, r := range recipients {
		unique := entity.UniqueTokens(grouped[r.Email])
		if len(unique) == 0 {
			continue
		}

		body := personalize(msg.body, r)
		records = append(records, &entity.DeliveryRecord{
			Recipient:   r.Email,
			Title:       msg.title,
			Body:        body,
			URL:         msg.url,
			PromotionID: input.PromotionID,
		})

		payload := s.payload(msg, body)
		for _, token := range unique {
			messages = append(messages, service.PushMessage{Token: token, Payload: payload})
			tokens = append(tokens, token)
			owners = append(owners, r.Email)
		}
	}

	if len(records) == 0 {
		return nil, domainerrors.ErrNoTokens.WithDetails("no recipient has a registered device")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewDeliveryRepository().BatchCreateRecords(ctx, records)
	})
	if err != nil {
		s.log(ctx).Error("Failed to write broadcast delivery records, push aborted",
			slog.Int("recipients", len(records)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrLogWrite.WithCause(err)
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.pushCfg.Timeout)
	defer cancel()

	results, pushErr := s.pushSvc.SendEach(pushCtx, messages)
	if pushErr != nil {
		s.log(ctx).Warn("Push transport failed, delivery records kept",
			slog.Int("recipients", len(records)),
			slog.Any("error", pushErr),
		)
	}

	dispatch := aggregate(tokens, owners, results, pushErr)
	dispatch.RecordIDs = make([]int64, 0, len(records))
	for _, r := range records {
		dispatch.RecordIDs = append(dispatch.RecordIDs, r.ID)
	}

	result := &entity.BroadcastResult{
		DispatchResult: *dispatch,
		Recipients:     len(records),
		Skipped:        len(recipients) - len(records),
	}

	s.log(ctx).Info("Broadcast dispatched",
		slog.Int("recipients", result.Recipients),
		slog.Int("skipped", result.Skipped),
		slog.Int("requested", result.Requested),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)

	s.publishInvalidTokens(ctx, &result.DispatchResult)

	return result, nil
}

func (s *dispatchService) authorize(ctx context.Context, actor string) error {
	if actor == "" {
		return domainerrors.ErrUnauthorized
	}
	if !s.authorizer.IsAdmin(ctx, actor) {
		s.log(ctx).Warn("Dispatch rejected for non-admin actor", slog.String("actor", actor))

		return domainerrors.ErrForbidden
	}

	return nil
}

// resolveContent fills the title and body from the promotion when they are
// empty and defaults the link.
func (s *dispatchService) resolveContent(ctx context.Context, title, body, url string, promotionID *int64) (*content, error) {
	msg := &content{
		title: strings.TrimSpace(title),
		body:  body,
		url:   strings.TrimSpace(url),
	}

	if promotionID != nil {
		promotion, err := s.promotionRepo.FindByID(ctx, *promotionID)
		if err != nil {
			if errors.Is(err, repository.ErrPromotionNotFound) {
				return nil, domainerrors.ErrPromotionNotFound
			}

			return nil, errors.Wrap(err, "failed to find promotion")
		}

		if msg.title == "" {
			msg.title = promotion.Title
		}
		if strings.TrimSpace(msg.body) == "" && promotion.Text != nil {
			msg.body = *promotion.Text
		}
		if promotion.ImageLink != nil {
			msg.imageURL = *promotion.ImageLink
		}
	}

	if msg.title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if msg.url == "" {
		msg.url = s.pushCfg.DefaultURL
	}

	return msg, nil
}

func (s *dispatchService) payload(msg *content, body string) service.PushPayload {
	return service.PushPayload{
		Title:    msg.title,
		Body:     body,
		URL:      msg.url,
		Icon:     s.pushCfg.Icon,
		ImageURL: msg.imageURL,
	}
}

// publishInvalidTokens hands unregistered tokens to the pruner. Failures are
// logged and never affect the dispatch outcome.
func (s *dispatchService) publishInvalidTokens(ctx context.Context, result *entity.DispatchResult) {
	if s.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for recipient, tokens := range result.InvalidTokensByRecipient() {
		event := &service.TokenInvalidationEvent{
			EventID:   uuid.NewString(),
			RequestID: requestID,
			Recipient: recipient,
			Tokens:    tokens,
		}
		if err := s.publisher.PublishTokenInvalidation(ctx, event); err != nil {
			s.log(ctx).Warn("Failed to publish token invalidation event",
				slog.String("recipient", recipient),
				slog.Int("tokens", len(tokens)),
				slog.Any("error", err),
			)
		}
	}
}

// aggregate maps transport results back to tokens by position. A token
// without a result, or every token when the transport call itself failed,
// counts as failed.
func aggregate(tokens, owners []string, results []service.TokenResult, pushErr error) *entity.DispatchResult {
	result := &entity.DispatchResult{
		Logged:    true,
		Requested: len(tokens),
	}

	for i, token := range tokens {
		var tr *service.TokenResult
		if pushErr == nil && i < len(results) {
			tr = &results[i]
		}

		if tr != nil && tr.Success {
			result.Delivered++

			continue
		}

		result.Failed++
		tokenErr := entity.TokenError{
			Recipient: owners[i],
			Token:     token,
			Detail:    transportFailureDetail,
		}
		switch {
		case pushErr != nil:
			tokenErr.Detail = pushErr.Error()
		case tr != nil:
			if tr.Error != "" {
				tokenErr.Detail = tr.Error
			}
			tokenErr.Unregistered = tr.Unregistered
		}
		result.PerTokenErrors = append(result.PerTokenErrors, tokenErr)
	}

	return result
}
