package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-store/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := registerJSONHandler(s.mqConsumer, TopicProductCreated, s.handleProductCreatedEvent); err != nil {
		return nil, fmt.Errorf("register product created event handler: %w", err)
	}

	if err := registerJSONHandler(s.mqConsumer, TopicProductUpdated, s.handleProductUpdatedEvent); err != nil {
		return nil, fmt.Errorf("register product updated event handler: %w", err)
	}

	if err := registerJSONHandler(s.mqConsumer, TopicProductDeleted, s.handleProductDeletedEvent); err != nil {
		return nil, fmt.Errorf("register product deleted event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

func registerJSONHandler[T any](consumer mq.Consumer, topic string, handle func(context.Context, T) error) error {
	return consumer.RegisterHandler(topic, func(ctx context.Context, topic string, payload []byte) error {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	})
}
