package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindEligibleForUpdate busca la primera orden con el mismo producto y la misma
// cantidad creada antes de `before`, y bloquea la fila (SELECT FOR UPDATE).
// Desempate determinista: created_at más antiguo y luego id más bajo.
// Devuelve nil si ninguna orden califica.
func (r *OrderRepo) FindEligibleForUpdate(productID, amount int64, before time.Time) (*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, price, created_at, fulfilled_at
		FROM orders
		WHERE product_id = $1 AND amount = $2 AND created_at < $3
		ORDER BY created_at, id
		LIMIT 1
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, productID, amount, before).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.Price, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find eligible order: %w", err)
	}
	return &o, nil
}

// MarkFulfilled escribe el timestamp de surtido de la orden.
func (r *OrderRepo) MarkFulfilled(orderID int64, fulfilledAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET fulfilled_at = $2 WHERE id = $1`, orderID, fulfilledAt)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark order fulfilled: orden %d no existe", orderID)
	}
	return nil
}
