package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

var _ repository.ParcelMovementRepository = (*ParcelMovementRepo)(nil)

// ParcelMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla parcel_movements es append-only.
type ParcelMovementRepo struct {
	q Querier
}

// NewParcelMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewParcelMovementRepository(q Querier) *ParcelMovementRepo {
	return &ParcelMovementRepo{q: q}
}

const movementColumns = `id, parcel_id, type, ct_weight, stones, order_id, reason, resulting_total_weight, created_by, created_at`

// Create persiste un movimiento del ledger.
func (r *ParcelMovementRepo) Create(movement *entity.ParcelMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO parcel_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ParcelID, movement.Type, movement.CtWeight, movement.Stones,
		movement.OrderID, movement.Reason, movement.ResultingTotalWeight, createdBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create parcel movement: %w", err)
	}
	return nil
}

// ListByParcel lista el historial de un lote, el más reciente primero.
func (r *ParcelMovementRepo) ListByParcel(parcelID string, limit, offset int) ([]*entity.ParcelMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM parcel_movements WHERE parcel_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, parcelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by parcel: %w", err)
	}
	return scanMovements(rows)
}

// ListByOrder lista los movimientos originados por un pedido, en orden cronológico.
func (r *ParcelMovementRepo) ListByOrder(orderID string) ([]*entity.ParcelMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM parcel_movements WHERE order_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list movements by order: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.ParcelMovement, error) {
	defer rows.Close()
	var list []*entity.ParcelMovement
	for rows.Next() {
		var m entity.ParcelMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.ParcelID, &m.Type, &m.CtWeight, &m.Stones,
			&m.OrderID, &m.Reason, &m.ResultingTotalWeight, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
