package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promopush/config"
	domainerrors "promopush/internal/domain/errors"
	"promopush/internal/domain/service"
	"promopush/internal/infra/pubsub"
	usecasemocks "promopush/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPruneHandler(t *testing.T, cfg *config.Config) (*PruneHandler, *usecasemocks.MockTokenUsecase) {
	t.Helper()

	tokenUC := usecasemocks.NewMockTokenUsecase(t)
	h := NewPruneHandler(PruneHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		TokenUC: tokenUC,
	})

	return h, tokenUC
}

func pushBody(t *testing.T, event *service.TokenInvalidationEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PruneHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/token-invalidation", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func validEvent() *service.TokenInvalidationEvent {
	return &service.TokenInvalidationEvent{
		EventID:   "evt-1",
		Recipient: "a@x.com",
		Tokens:    []string{"stale-1", "stale-2"},
	}
}

func TestPruneHandler_PrunesTokens(t *testing.T) {
	h, tokenUC := newTestPruneHandler(t, &config.Config{})
	tokenUC.EXPECT().PruneTokens(mock.Anything, "a@x.com", []string{"stale-1", "stale-2"}).Return(int64(2), nil).Once()

	rec := servePush(h, pushBody(t, validEvent()), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPruneHandler_StorageFailureIsRetried(t *testing.T) {
	h, tokenUC := newTestPruneHandler(t, &config.Config{})
	tokenUC.EXPECT().PruneTokens(mock.Anything, "a@x.com", mock.Anything).
		Return(int64(0), domainerrors.ErrTokenStorage.WithCause(assert.AnError)).Once()

	rec := servePush(h, pushBody(t, validEvent()), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPruneHandler_ValidationFailureIsAcknowledged(t *testing.T) {
	h, tokenUC := newTestPruneHandler(t, &config.Config{})
	tokenUC.EXPECT().PruneTokens(mock.Anything, "a@x.com", mock.Anything).
		Return(int64(0), domainerrors.ErrValidationFailed).Once()

	rec := servePush(h, pushBody(t, validEvent()), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPruneHandler_MalformedEventIsAcknowledged(t *testing.T) {
	h, tokenUC := newTestPruneHandler(t, &config.Config{})

	rec := servePush(h, pushBody(t, &service.TokenInvalidationEvent{EventID: "evt-1", Recipient: "a@x.com"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	tokenUC.AssertNotCalled(t, "PruneTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestPruneHandler_BadEnvelope(t *testing.T) {
	h, _ := newTestPruneHandler(t, &config.Config{})

	rec := servePush(h, "{not json", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPruneHandler_VerifiesPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google", Audience: "https://worker.example.com/push"}}
	cfg.Env.Env = "production"

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		verifyErr     error
		want          int
	}{
		{name: "missing header", authorization: "", want: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic x", want: http.StatusUnauthorized},
		{name: "invalid token", authorization: "Bearer bad", verifyErr: assert.AnError, want: http.StatusUnauthorized},
		{
			name:          "foreign issuer",
			authorization: "Bearer ok",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			want:          http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer ok",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			want:          http.StatusUnauthorized,
		},
		{
			name:          "google token",
			authorization: "Bearer ok",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			want:          http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, tokenUC := newTestPruneHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			h.verify = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example.com/push", audience)
				if tt.verifyErr != nil {
					return nil, tt.verifyErr
				}

				return tt.payload, nil
			}
			if tt.want == http.StatusOK {
				tokenUC.EXPECT().PruneTokens(mock.Anything, "a@x.com", mock.Anything).Return(int64(2), nil).Once()
			}

			rec := servePush(h, pushBody(t, validEvent()), tt.authorization)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPruneHandler_SkipsAuthInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "develop"

	h, _ := newTestPruneHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	var msg pubsub.PushMessage
	event := &service.TokenInvalidationEvent{RequestID: "req-event"}

	assert.Equal(t, "req-event", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	assert.Equal(t, "req-attr", extractRequestID(context.Background(), &msg, event))

	assert.NotEmpty(t, extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.TokenInvalidationEvent{}))
}
