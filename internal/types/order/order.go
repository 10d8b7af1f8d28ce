package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line - строка заказа, снимок позиции корзины на момент оформления
type Line struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Order - оформленный заказ
type Order struct {
	ID       string          `json:"id"`
	Lines    []Line          `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Receipt - ответ клиенту после подтверждения заказа
type Receipt struct {
	OrderID string `json:"order_id"`
	Total   string `json:"total"`
	Items   int    `json:"items"`
}
