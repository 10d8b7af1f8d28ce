package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cafenate-cart/internal/kafka"
	"cafenate-cart/internal/shopping_cart"
	myErr "cafenate-cart/internal/types/errors"
	"cafenate-cart/internal/types/order"
)

// Service оформляет заказ по снимку корзины
type Service struct {
	Logger        *zap.SugaredLogger
	EventProducer kafka.EventProducer

	now   func() time.Time
	newID func() string
}

func NewService(logger *zap.SugaredLogger, ep kafka.EventProducer) *Service {
	return &Service{
		Logger:        logger,
		EventProducer: ep,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
	}
}

// Confirm передает заказ дальше и только после этого убирает заказанное из корзины.
// То, что успели добавить во время передачи, остается в корзине.
// Если передать заказ не удалось, корзина остается как была
func (s *Service) Confirm(ctx context.Context, store shopping_cart.CartStore) (*order.Receipt, error) {
	snapshot := store.Cart()
	if len(snapshot) == 0 {
		return nil, myErr.ErrEmptyCart
	}

	o := BuildOrder(s.newID(), snapshot, s.now().UTC())

	event := kafka.Event{
		Type:      kafka.EventTypeOrderPlaced,
		Order:     o,
		Timestamp: o.PlacedAt,
	}
	if err := s.EventProducer.SendEvent(ctx, event); err != nil {
		s.Logger.Errorw("failed to hand off order", "order_id", o.ID, "err", err)
		return nil, fmt.Errorf("%w: %v", myErr.ErrPublishOrder, err)
	}

	store.Subtract(snapshot)
	s.Logger.Infof("order %s placed: %d items for total %s", o.ID, shopping_cart.Units(snapshot), o.Total.StringFixed(2))

	return &order.Receipt{
		OrderID: o.ID,
		Total:   o.Total.StringFixed(2),
		Items:   shopping_cart.Units(snapshot),
	}, nil
}

// BuildOrder переводит снимок корзины в заказ
func BuildOrder(id string, cart shopping_cart.Cart, placedAt time.Time) order.Order {
	lines := make([]order.Line, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, order.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return order.Order{
		ID:       id,
		Lines:    lines,
		Total:    shopping_cart.Total(cart),
		PlacedAt: placedAt,
	}
}
