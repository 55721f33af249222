package impl

import (
	"io"
	"log/slog"
	"time"

	"promopush/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Push: &config.PushConfig{
			Timeout:      time.Second,
			BatchSize:    500,
			Workers:      2,
			Icon:         "/icons/icon-192.png",
			DefaultURL:   "/notification",
			HistoryLimit: 20,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
