package events

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"tienda/config"
	"tienda/internal/domain/service"
)

// Provider names accepted in the pubsub config section.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher is a no-op implementation when event publishing is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Emit(ctx context.Context, event service.Event) error {
	p.logger.Debug("[NoopPublisher] Event publishing disabled, skipping",
		slog.String("event", event.Name),
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

// PublisherResult carries the publisher and, for the local provider, the
// hub that SSE clients subscribe to. Hub is nil for other providers.
type PublisherResult struct {
	fx.Out

	Publisher service.EventPublisher
	Hub       *Hub
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (PublisherResult, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If event publishing is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event publishing not configured, using no-op publisher")

		return registerStop(params, &noopPublisher{logger: logger}, nil), nil
	}

	switch cfg.Provider {
	case ProviderLocal:
		logger.Info("Using in-process event hub",
			slog.Int("buffer_size", cfg.BufferSize),
		)

		hub := NewHub(cfg.BufferSize, logger)

		return registerStop(params, hub, hub), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return PublisherResult{}, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return PublisherResult{}, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return PublisherResult{}, err
		}

		return registerStop(params, publisher, nil), nil

	default:
		return PublisherResult{}, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// registerStop closes the publisher on shutdown.
func registerStop(params PublisherParams, publisher service.EventPublisher, hub *Hub) PublisherResult {
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return PublisherResult{Publisher: publisher, Hub: hub}
}
