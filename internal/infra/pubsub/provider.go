package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"mart/config"
	"mart/internal/domain/constants"
	"mart/internal/domain/service"
	"mart/internal/errors"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderPlacedEvent(_ context.Context, event *service.OrderPlacedEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the order event publisher for pubsub.provider
// and closes it when the application stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	pubsubCfg := cfg.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch pubsubCfg.Provider {
	case constants.PubSubProviderLocal:
		endpoint, err := localEndpoint(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", endpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if pubsubCfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if pubsubCfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", pubsubCfg.ProjectID),
			slog.String("topic_id", pubsubCfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, pubsubCfg.ProjectID, pubsubCfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", pubsubCfg.Provider)
	}
}

// localEndpoint falls back to the worker running on this host when no
// endpoint is configured.
func localEndpoint(cfg *config.Config) (string, error) {
	if cfg.PubSub.LocalEndpoint != "" {
		return cfg.PubSub.LocalEndpoint, nil
	}
	if cfg.Worker == nil || cfg.Worker.Port == 0 {
		return "", errors.New("local endpoint is required for local provider")
	}

	return fmt.Sprintf("http://localhost:%d%s", cfg.Worker.Port, constants.PubSubPushPath), nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
