// Package changefeed is the real-time bridge between devices: row-level change
// events published after successful mirror pushes and consumed by every other
// device's reconciliation layer.
package changefeed

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"pureflow/config"
	"pureflow/internal/domain/repository"
	"pureflow/internal/errors"
)

// noopFeed is the feed when no transport is configured: publishes vanish and
// no events ever arrive. Single-device deployments work fine this way.
type noopFeed struct {
	logger *slog.Logger
}

func (f *noopFeed) Publish(_ context.Context, event repository.ChangeEvent) error {
	f.logger.Debug("change feed disabled, dropping event",
		slog.String("table", event.Table),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (f *noopFeed) Subscribe(context.Context, string, func(repository.ChangeEvent)) error {
	return nil
}

func (f *noopFeed) Close() error { return nil }

// FeedParams holds dependencies for the change feed, injected by Fx
type FeedParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewChangeFeed creates a ChangeFeed based on configuration.
func NewChangeFeed(params FeedParams) (repository.ChangeFeed, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == "noop" {
		logger.Info("change feed not configured, using no-op feed")

		return &noopFeed{logger: logger}, nil
	}

	var feed repository.ChangeFeed

	switch cfg.Provider {
	case "kafka":
		if len(cfg.Brokers) == 0 {
			return nil, errors.New("brokers are required for the kafka provider")
		}
		if cfg.Topic == "" {
			return nil, errors.New("topic is required for the kafka provider")
		}
		logger.Info("using kafka change feed",
			slog.Any("brokers", cfg.Brokers),
			slog.String("topic", cfg.Topic),
		)

		feed = NewKafkaFeed(cfg, logger)

	default:
		return nil, errors.Errorf("unknown change feed provider: %s", cfg.Provider)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("closing change feed")

			return feed.Close()
		},
	})

	return feed, nil
}
