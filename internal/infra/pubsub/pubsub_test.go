package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"promopush/config"
	"promopush/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.TokenInvalidationEvent {
	return &service.TokenInvalidationEvent{
		EventID:   "evt-1",
		RequestID: "req-1",
		Recipient: "a@x.com",
		Tokens:    []string{"stale-1", "stale-2"},
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTokenInvalidation(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "a@x.com", received.Message.Attributes["recipient"])

	event, err := DecodeTokenInvalidation(&received)
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishTokenInvalidation(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDecodeTokenInvalidation_Rejects(t *testing.T) {
	encode := func(v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		return base64.StdEncoding.EncodeToString(data)
	}

	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: base64.StdEncoding.EncodeToString([]byte("nope"))},
		{name: "no tokens", data: encode(service.TokenInvalidationEvent{EventID: "e", Recipient: "a@x.com"})},
		{name: "bad recipient", data: encode(service.TokenInvalidationEvent{EventID: "e", Recipient: "nobody", Tokens: []string{"t"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = tt.data

			_, err := DecodeTokenInvalidation(&msg)
			assert.Error(t, err)
		})
	}
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset is noop", cfg: nil},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/prune"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNoopPublisher_Accepts(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishTokenInvalidation(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
