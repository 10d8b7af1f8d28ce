package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// ReaderInterface интерфейс для Kafka Reader. Оффсет коммитится отдельно,
// только после успешной обработки
//
//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_kafka.go -package=mocks
type ReaderInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WriterInterface интерфейс для Kafka Writer
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventProducer отправляет события о заказах
type EventProducer interface {
	SendEvent(ctx context.Context, event Event) error
	Close() error
}

// EventConsumer читает события о заказах и отдает их обработчику
type EventConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, Event) error)
	Close() error
}
