package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// HeaderEventType заголовок с типом события, чтобы читатели могли
// отфильтровать сообщение, не разбирая тело
const HeaderEventType = "event-type"

// Producer публикует события о заказах. Сообщения одного заказа идут
// в одну партицию: ключ - id заказа
type Producer struct {
	Writer WriterInterface
	Logger *zap.SugaredLogger
}

func NewProducer(brokers []string, topic string, logger *zap.SugaredLogger) *Producer {
	return &Producer{
		Writer: &orderWriter{
			w: &kgo.Writer{
				Addr:         kgo.TCP(brokers...),
				Topic:        topic,
				Balancer:     &kgo.Hash{},
				RequiredAcks: kgo.RequireAll,
				// оформление заказа ждет подтверждения, копить батч незачем
				BatchTimeout: 10 * time.Millisecond,
			},
		},
		Logger: logger,
	}
}

type orderWriter struct {
	w *kgo.Writer
}

func (o *orderWriter) WriteMessages(ctx context.Context, msgs ...kgo.Message) error {
	return o.w.WriteMessages(ctx, msgs...)
}

func (o *orderWriter) Close() error {
	return o.w.Close()
}

// SendEvent синхронно пишет событие и возвращается только после
// подтверждения от всех реплик
func (p *Producer) SendEvent(ctx context.Context, event Event) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.Writer.WriteMessages(ctx, msg); err != nil {
		p.Logger.Errorf("Failed to write Kafka message for order %s: %v", event.Order.ID, err)
		return err
	}

	p.Logger.Infow("event sent", "type", event.Type, "order_id", event.Order.ID)
	return nil
}

func encodeEvent(event Event) (kgo.Message, error) {
	if event.Order.ID == "" {
		return kgo.Message{}, fmt.Errorf("event %s has no order id", event.Type)
	}

	value, err := json.Marshal(event)
	if err != nil {
		return kgo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kgo.Message{
		Key:     []byte(event.Order.ID),
		Value:   value,
		Time:    event.Timestamp,
		Headers: []kgo.Header{{Key: HeaderEventType, Value: []byte(event.Type)}},
	}, nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
