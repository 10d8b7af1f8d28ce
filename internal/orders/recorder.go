package orders

import (
	"context"

	"go.uber.org/zap"

	"cafenate-cart/internal/kafka"
)

// Recorder сохраняет заказы, пришедшие из топика
type Recorder struct {
	repo   OrderRepo
	logger *zap.SugaredLogger
}

func NewRecorder(repo OrderRepo, logger *zap.SugaredLogger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

func (r *Recorder) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.Type != kafka.EventTypeOrderPlaced || event.Order.ID == "" {
		return nil // Игнорируем чужие и пустые события
	}

	if err := r.repo.Save(ctx, event.Order); err != nil {
		return err
	}

	r.logger.Infof("order %s recorded: %d lines, total %s", event.Order.ID, len(event.Order.Lines), event.Order.Total.StringFixed(2))
	return nil
}
