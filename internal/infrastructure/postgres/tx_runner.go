package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmestre/joyeria-api/internal/application/inventory"
	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/application/workflow"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner, workflow.TxRunner y orders.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ workflow.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del ledger atados a la tx
// y hace Commit o Rollback. El saldo del lote y su movimiento son una sola unidad.
func (r *TxRunner) Run(ctx context.Context, fn func(
	parcelRepo repository.ParcelRepository,
	movRepo repository.ParcelMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	parcelRepo := NewParcelRepository(tx)
	movRepo := NewParcelMovementRepository(tx)

	if err := fn(parcelRepo, movRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder inicia una transacción con los repos de pedidos (workflow de estados
// y creación de pedidos con entrada inicial de historial).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	statusRepo repository.OrderStatusRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	statusRepo := NewOrderStatusRepository(tx)

	if err := fn(orderRepo, statusRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
