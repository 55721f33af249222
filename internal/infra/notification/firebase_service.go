package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"promopush/config"
	"promopush/internal/domain/lifecycle"
	"promopush/internal/domain/service"
	"promopush/internal/errors"
	"promopush/internal/infra/metrics"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	// Firebase rejects multicast and batch requests above 500 messages.
	firebaseBatchSize = 500

	defaultPushWorkers = 4
	poolExpiry         = 10 * time.Second

	modeMulticast = "multicast"
	modeEach      = "each"

	noResponseDetail = "no response from push provider"
)

// messagingClient is the part of the FCM client used to send messages.
type messagingClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    messagingClient
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// FirebaseServiceParams holds dependencies for the FCM transport, injected by Fx.
type FirebaseServiceParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates the FCM push transport. Batches of up to 500
// tokens are sent concurrently on a bounded worker pool.
func NewFirebaseService(params FirebaseServiceParams) (service.PushService, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)
	if params.Config.Firebase != nil {
		if params.Config.Firebase.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}
		}
		if params.Config.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	batchSize, workers := firebaseBatchSize, defaultPushWorkers
	if push := params.Config.Push; push != nil {
		if push.BatchSize > 0 && push.BatchSize < firebaseBatchSize {
			batchSize = push.BatchSize
		}
		if push.Workers > 0 {
			workers = push.Workers
		}
	}

	svc, err := newFirebaseService(client, workers, batchSize, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return svc.Release()
		},
	})

	return svc, nil
}

func newFirebaseService(client messagingClient, workers, batchSize int, logger *slog.Logger) (*firebaseService, error) {
	if batchSize <= 0 || batchSize > firebaseBatchSize {
		batchSize = firebaseBatchSize
	}

	pool, err := ants.NewPool(workers,
		ants.WithPanicHandler(func(p any) {
			logger.Error("Push worker panic recovered", slog.Any("panic", p))
		}),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(poolExpiry),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create push worker pool")
	}

	return &firebaseService{
		client:    client,
		pool:      pool,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

// Release waits for in-flight batches and frees the worker pool.
func (s *firebaseService) Release() error {
	return s.pool.ReleaseTimeout(lifecycle.DefaultTimeout)
}

// SendMulticast sends the same payload to every token.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, payload service.PushPayload) ([]service.TokenResult, error) {
	results := s.dispatch(ctx, modeMulticast, tokens, func(ctx context.Context, start, end int) (*messaging.BatchResponse, error) {
		message := buildMulticastMessage(tokens[start:end], payload)

		return s.client.SendEachForMulticast(ctx, message)
	})

	return results, nil
}

// SendEach sends individually addressed messages.
func (s *firebaseService) SendEach(ctx context.Context, messages []service.PushMessage) ([]service.TokenResult, error) {
	tokens := make([]string, len(messages))
	for i, m := range messages {
		tokens[i] = m.Token
	}

	results := s.dispatch(ctx, modeEach, tokens, func(ctx context.Context, start, end int) (*messaging.BatchResponse, error) {
		batch := make([]*messaging.Message, 0, end-start)
		for _, m := range messages[start:end] {
			batch = append(batch, buildMessage(m.Token, m.Payload))
		}

		return s.client.SendEach(ctx, batch)
	})

	return results, nil
}

type batchSender func(ctx context.Context, start, end int) (*messaging.BatchResponse, error)

// dispatch splits tokens into provider-sized batches and sends them on the
// pool. Results keep input order; a batch that never reports back leaves its
// tokens failed.
func (s *firebaseService) dispatch(ctx context.Context, mode string, tokens []string, send batchSender) []service.TokenResult {
	results := make([]service.TokenResult, len(tokens))
	for i, token := range tokens {
		results[i] = service.TokenResult{Token: token, Error: noResponseDetail}
	}

	var wg sync.WaitGroup
	for start := 0; start < len(tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(tokens))

		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()

			s.sendBatch(ctx, mode, results[start:end], func() (*messaging.BatchResponse, error) {
				return send(ctx, start, end)
			})
		})
		if err != nil {
			wg.Done()
			markFailed(results[start:end], err)
		}
	}
	wg.Wait()

	s.record(mode, results)

	return results
}

func (s *firebaseService) sendBatch(ctx context.Context, mode string, batch []service.TokenResult, call func() (*messaging.BatchResponse, error)) {
	if err := ctx.Err(); err != nil {
		markFailed(batch, err)

		return
	}

	started := time.Now()
	response, err := call()
	metrics.PushBatchDurationSeconds.WithLabelValues(mode).Observe(time.Since(started).Seconds())

	if err != nil {
		s.logger.Warn("Push batch failed",
			slog.String("mode", mode),
			slog.Int("tokens", len(batch)),
			slog.Any("error", err),
		)
		markFailed(batch, err)

		return
	}

	for i, resp := range response.Responses {
		if i >= len(batch) || resp == nil {
			break
		}

		if resp.Success {
			batch[i].Success = true
			batch[i].Error = ""

			continue
		}

		batch[i].Error = noResponseDetail
		if resp.Error != nil {
			batch[i].Error = resp.Error.Error()
			batch[i].Unregistered = messaging.IsUnregistered(resp.Error) || messaging.IsInvalidArgument(resp.Error)
		}
	}

	s.logger.Debug("Push batch sent",
		slog.String("mode", mode),
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
	)
}

func (s *firebaseService) record(mode string, results []service.TokenResult) {
	counts := map[string]int{}
	for _, r := range results {
		switch {
		case r.Success:
			counts[metrics.ResultDelivered]++
		case r.Unregistered:
			counts[metrics.ResultUnregistered]++
		default:
			counts[metrics.ResultFailed]++
		}
	}

	for result, n := range counts {
		metrics.PushTokensTotal.WithLabelValues(mode, result).Add(float64(n))
	}
}

func markFailed(batch []service.TokenResult, err error) {
	for i := range batch {
		batch[i].Success = false
		batch[i].Error = err.Error()
	}
}
