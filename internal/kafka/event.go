package kafka

import (
	"time"

	"cafenate-cart/internal/types/order"
)

type EventType string

const (
	EventTypeOrderPlaced EventType = "order_placed"
)

type Event struct {
	Type      EventType   `json:"type"`
	Order     order.Order `json:"order"`
	Timestamp time.Time   `json:"timestamp"`
}
