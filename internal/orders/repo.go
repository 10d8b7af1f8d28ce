package orders

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	myErr "cafenate-cart/internal/types/errors"
	"cafenate-cart/internal/types/order"
)

type OrderDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewOrderDBRepository(db *sql.DB, logger *zap.SugaredLogger) *OrderDBRepository {
	return &OrderDBRepository{
		DB:     db,
		Logger: logger,
	}
}

// Save сохраняет заказ и его строки в одной транзакции
func (r *OrderDBRepository) Save(ctx context.Context, o order.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.Logger.Errorf("Ошибка при открытии транзакции для заказа %s: %v", o.ID, err)
		return myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	res, err := tx.ExecContext(ctx, `
	INSERT INTO orders(id, total, placed_at)
	VALUES ($1, $2, $3) ON CONFLICT (id)
	DO NOTHING
`, o.ID, o.Total, o.PlacedAt)
	if err != nil {
		r.Logger.Errorf("Ошибка при сохранении заказа %s: %v", o.ID, err)
		return myErr.ErrDBInternal
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		r.Logger.Errorf("Ошибка при сохранении заказа %s: %v", o.ID, err)
		return myErr.ErrDBInternal
	}
	if inserted == 0 {
		r.Logger.Infof("Заказ %s уже сохранен, пропускаем", o.ID)
		return nil
	}

	for pos, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
	INSERT INTO order_lines(order_id, position, item_id, name, size, unit_price, quantity)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`, o.ID, pos, line.ItemID, line.Name, line.Size, line.UnitPrice, line.Quantity)
		if err != nil {
			r.Logger.Errorf("Ошибка при сохранении строки %d заказа %s: %v", pos, o.ID, err)
			return myErr.ErrDBInternal
		}
	}

	if err = tx.Commit(); err != nil {
		r.Logger.Errorf("Ошибка при коммите заказа %s: %v", o.ID, err)
		return myErr.ErrDBInternal
	}

	return nil
}

// GetByID получает заказ со строками в порядке корзины
func (r *OrderDBRepository) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	var o order.Order
	err := r.DB.QueryRowContext(ctx, `
	SELECT id, total, placed_at FROM orders
	WHERE id = $1
`, orderID).Scan(&o.ID, &o.Total, &o.PlacedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}

		r.Logger.Errorf("Ошибка при получении заказа %s: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT item_id, name, size, unit_price, quantity FROM order_lines
	WHERE order_id = $1
	ORDER BY position
`, orderID)
	if err != nil {
		r.Logger.Errorf("Ошибка при получении строк заказа %s: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	for rows.Next() {
		var line order.Line
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Size, &line.UnitPrice, &line.Quantity); err != nil {
			r.Logger.Errorf("Ошибка при чтении строки заказа %s: %v", orderID, err)
			return nil, myErr.ErrDBInternal
		}

		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		r.Logger.Errorf("Ошибка при обходе строк заказа %s: %v", orderID, err)
		return nil, myErr.ErrDBInternal
	}

	return &o, nil
}
