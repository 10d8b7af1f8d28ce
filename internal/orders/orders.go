package orders

import (
	"context"

	"cafenate-cart/internal/types/order"
)

// OrderRepo интерфейс для работы репозитория оформленных заказов
//
//go:generate mockgen -source=orders.go -destination=../mocks/mock_order_repo.go -package=mocks
type OrderRepo interface {
	// Save сохраняет заказ вместе со строками. Повторное сохранение того же id игнорируется
	Save(ctx context.Context, o order.Order) error
	// GetByID получает заказ по id
	GetByID(ctx context.Context, orderID string) (*order.Order, error)
}
