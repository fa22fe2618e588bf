package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL
// (tabla product_warehouse, usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// ExistsForOrder indica si ya existe una recepción que referencia la orden.
func (r *ReceiptRepo) ExistsForOrder(orderID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM product_warehouse WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("receipt exists for order: %w", err)
	}
	return exists, nil
}

// Create persiste la recepción y asigna el ID generado. El UNIQUE sobre
// order_id respalda el check de surtido bajo concurrencia: una violación se
// reporta como ErrOrderFulfilled.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO product_warehouse (product_id, warehouse_id, amount, price, created_at, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		receipt.ProductID, receipt.WarehouseID, receipt.Amount,
		receipt.Price, receipt.CreatedAt, receipt.OrderID,
	).Scan(&receipt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderFulfilled
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID. Devuelve nil si no existe.
func (r *ReceiptRepo) GetByID(id int64) (*entity.Receipt, error) {
	query := `
		SELECT id, product_id, warehouse_id, amount, price, created_at, order_id
		FROM product_warehouse WHERE id = $1`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Amount,
		&rec.Price, &rec.CreatedAt, &rec.OrderID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}

// List lista recepciones de la más reciente a la más antigua, con paginación.
func (r *ReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, product_id, warehouse_id, amount, price, created_at, order_id
		FROM product_warehouse ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Amount,
			&rec.Price, &rec.CreatedAt, &rec.OrderID,
		); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
