// Command pruner receives token invalidation events from Pub/Sub and removes
// the rejected device tokens from the registry.
package main

import (
	"context"
	"log/slog"
	"os"

	"promopush/config"
	"promopush/internal/delivery"
	"promopush/internal/delivery/worker"
	"promopush/internal/delivery/worker/handler"
	logs "promopush/internal/infra/log"
	"promopush/internal/infra/persistence/postgres"
	"promopush/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTokenRepository,
			impl.NewTokenService,
			handler.NewPruneHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
