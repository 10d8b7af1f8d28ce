package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

// Consumer реализует EventConsumer.
type Consumer struct {
	Reader ReaderInterface
	Logger *zap.SugaredLogger
	// RetryBackoff первая пауза перед повтором обработчика, дальше удваивается
	RetryBackoff time.Duration
}

func NewConsumer(brokers []string, topic, groupID string, logger *zap.SugaredLogger) EventConsumer {
	return &Consumer{
		Reader: &kafkaReaderWrapper{
			Reader: kgo.NewReader(kgo.ReaderConfig{
				Brokers:  brokers,
				Topic:    topic,
				GroupID:  groupID,
				MinBytes: 1,
				MaxBytes: 10e6, // 10MB
			}),
		},
		Logger:       logger,
		RetryBackoff: defaultRetryBackoff,
	}
}

type kafkaReaderWrapper struct {
	Reader *kgo.Reader
}

func (w *kafkaReaderWrapper) FetchMessage(ctx context.Context) (kgo.Message, error) {
	return w.Reader.FetchMessage(ctx)
}

func (w *kafkaReaderWrapper) CommitMessages(ctx context.Context, msgs ...kgo.Message) error {
	return w.Reader.CommitMessages(ctx, msgs...)
}

func (w *kafkaReaderWrapper) Close() error {
	return w.Reader.Close()
}

// Consume читает сообщения до отмены контекста. Оффсет коммитится только после
// успешной обработки: упавший обработчик повторяется, пока не пройдет или пока
// не отменят контекст, чтобы следующий коммит не перескочил через необработанное
// сообщение. Битые сообщения и события неизвестного типа коммитятся и пропускаются
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Event) error) {
	for {
		msg, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			c.Logger.Errorf("Failed to fetch message: %v", err)
			continue
		}

		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.Logger.Errorf("Failed to unmarshal event at offset %d, skipping: %v", msg.Offset, err)
			c.commit(ctx, msg)
			continue
		}
		if event.Type != EventTypeOrderPlaced {
			c.Logger.Warnw("Unknown event type, skipping", "type", event.Type, "offset", msg.Offset)
			c.commit(ctx, msg)
			continue
		}

		if !c.handleWithRetry(ctx, handler, event) {
			return
		}
		c.commit(ctx, msg)
	}
}

// handleWithRetry возвращает false, если контекст отменили раньше успешной обработки
func (c *Consumer) handleWithRetry(ctx context.Context, handler func(context.Context, Event) error, event Event) bool {
	backoff := c.RetryBackoff
	for attempt := 1; ; attempt++ {
		err := handler(ctx, event)
		if err == nil {
			return true
		}
		c.Logger.Errorw("Failed to process event",
			"order_id", event.Order.ID,
			"attempt", attempt,
			"retry_in", backoff,
			"err", err,
		)

		select {
		case <-ctx.Done():
			c.Logger.Warnw("Stopped before event was processed, offset not committed", "order_id", event.Order.ID)
			return false
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}
}

func (c *Consumer) commit(ctx context.Context, msg kgo.Message) {
	if err := c.Reader.CommitMessages(ctx, msg); err != nil {
		c.Logger.Errorf("Failed to commit offset %d: %v", msg.Offset, err)
	}
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}
