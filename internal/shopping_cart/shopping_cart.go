package shopping_cart

import (
	"github.com/shopspring/decimal"

	myErr "cafenate-cart/internal/types/errors"
)

// LineItem одна позиция корзины: товар в конкретном размере
type LineItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
}

// Key идентичность позиции в корзине
type Key struct {
	ID   int
	Size string
}

// Key возвращает ключ, по которому позиции склеиваются
func (li LineItem) Key() Key {
	return Key{ID: li.ID, Size: li.Size}
}

// Subtotal стоимость позиции с учетом количества
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart упорядоченный список позиций, порядок добавления сохраняется
type Cart []LineItem

// Direction направление изменения количества
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// ParseDirection разбирает направление, пришедшее снаружи
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Increase, Decrease:
		return d, nil
	default:
		return "", myErr.ErrInvalidDirection
	}
}

// Total сумма по корзине. Всегда считается заново по снимку
func Total(cart Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Subtotal())
	}

	return total
}

// Units общее количество единиц товара в корзине
func Units(cart Cart) int {
	units := 0
	for _, item := range cart {
		units += item.Quantity
	}

	return units
}

// CartStore интерфейс хранилища корзины
//
//go:generate mockgen -source=shopping_cart.go -destination=../mocks/mock_cart_store.go -package=mocks
type CartStore interface {
	// Cart возвращает текущий снимок корзины
	Cart() Cart
	// Add добавляет одну единицу товара. Переданное количество игнорируется
	Add(item LineItem) Cart
	// UpdateQuantity увеличивает или уменьшает количество, позиции с нулем удаляются
	UpdateQuantity(id int, size string, dir Direction) Cart
	// Clear очищает корзину
	Clear() Cart
	// Subtract убирает из корзины заказанные количества
	Subtract(ordered Cart) Cart
	// Subscribe подписывает наблюдателя на изменения корзины.
	// Наблюдатель не должен менять корзину изнутри вызова
	Subscribe(fn func(Cart)) (unsubscribe func())
}
