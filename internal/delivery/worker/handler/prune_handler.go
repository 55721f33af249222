package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"promopush/config"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/domain/constants"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/service"
	"promopush/internal/infra/metrics"
	"promopush/internal/infra/pubsub"
	"promopush/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PruneHandler removes device tokens the push provider rejected. It receives
// token invalidation events as Pub/Sub push messages.
type PruneHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	tokenUC        usecase.TokenUsecase
	logger         *slog.Logger
}

// PruneHandlerParams holds dependencies for the PruneHandler
type PruneHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	TokenUC usecase.TokenUsecase
}

func NewPruneHandler(params PruneHandlerParams) *PruneHandler {
	cfg := params.Config.PubSub
	verifyPushAuth := cfg != nil &&
		cfg.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if cfg != nil {
		audience = cfg.Audience
	}

	return &PruneHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         idtoken.Validate,
		tokenUC:        params.TokenUC,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 for failures worth a redelivery and 200 for
// everything else, so malformed messages are not retried forever.
func (h *PruneHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeTokenInvalidation(&pushMsg)
	if err != nil {
		// Acknowledge: a malformed event will never succeed.
		h.logger.Error("[Worker] Dropping malformed token invalidation event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	removed, err := h.tokenUC.PruneTokens(ctx, event.Recipient, event.Tokens)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to prune tokens",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	metrics.TokensPrunedTotal.WithLabelValues().Add(float64(removed))

	reqLogger.Info("[Worker] Pruned invalid tokens",
		slog.String("event_id", event.EventID),
		slog.Int("reported", len(event.Tokens)),
		slog.Int64("removed", removed),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a redelivery may succeed. Storage failures are
// transient; validation failures are not.
func isRetryable(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed)
}

// extractRequestID prefers message attributes, then the event, then the
// inbound request, and generates an id as a last resort.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.TokenInvalidationEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the Google-signed OIDC token of a push request.
// The audience defaults to the URL of the endpoint.
func (h *PruneHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
