package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/application/warehouse"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

var _ warehouse.ProcedureRunner = (*ProcedureRunner)(nil)

// SQLSTATEs propios que lanza add_product_to_warehouse (ver migración 0002).
const (
	sqlstateProductNotFound   = "WH001"
	sqlstateWarehouseNotFound = "WH002"
	sqlstateOrderNotFound     = "WH003"
	sqlstateOrderFulfilled    = "WH409"
)

// ProcedureRunner ejecuta la ruta alterna del contrato: la función almacenada
// add_product_to_warehouse corre los siete pasos del lado del servidor en una
// sola llamada atómica y devuelve el ID generado.
type ProcedureRunner struct {
	pool *pgxpool.Pool
}

// NewProcedureRunner construye el adaptador con el pool.
func NewProcedureRunner(pool *pgxpool.Pool) *ProcedureRunner {
	return &ProcedureRunner{pool: pool}
}

// AddProductToWarehouse invoca la función y traduce sus SQLSTATEs a errores
// de dominio, para que ambas rutas sean indistinguibles para el caller.
func (r *ProcedureRunner) AddProductToWarehouse(ctx context.Context, productID, warehouseID, amount int64, createdAt time.Time) (int64, error) {
	var insertedID int64
	err := r.pool.QueryRow(ctx,
		`SELECT add_product_to_warehouse($1, $2, $3, $4)`,
		productID, warehouseID, amount, createdAt,
	).Scan(&insertedID)
	if err != nil {
		switch pgErrCode(err) {
		case sqlstateProductNotFound:
			return 0, domain.ErrProductNotFound
		case sqlstateWarehouseNotFound:
			return 0, domain.ErrWarehouseNotFound
		case sqlstateOrderNotFound:
			return 0, domain.ErrOrderNotFound
		case sqlstateOrderFulfilled:
			return 0, domain.ErrOrderFulfilled
		}
		if isUniqueViolation(err) {
			return 0, domain.ErrOrderFulfilled
		}
		return 0, fmt.Errorf("add_product_to_warehouse: %w", err)
	}
	return insertedID, nil
}
