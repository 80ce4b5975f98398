package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

var _ repository.OrderStatusRepository = (*OrderStatusRepo)(nil)

// OrderStatusRepo implementación del historial de estados (append-only).
type OrderStatusRepo struct {
	q Querier
}

// NewOrderStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderStatusRepository(q Querier) *OrderStatusRepo {
	return &OrderStatusRepo{q: q}
}

// Create inserta una entrada de historial.
func (r *OrderStatusRepo) Create(entry *entity.OrderStatusEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_status_history (id, order_id, status, comment, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.OrderID, entry.Status, entry.Comment, createdBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create status entry: %w", err)
	}
	return nil
}

// ListByOrder devuelve el historial en orden cronológico (created_at ASC).
func (r *OrderStatusRepo) ListByOrder(orderID string) ([]*entity.OrderStatusEntry, error) {
	query := `
		SELECT id, order_id, status, comment, created_by, created_at
		FROM order_status_history WHERE order_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderStatusEntry
	for rows.Next() {
		var e entity.OrderStatusEntry
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Comment, &createdBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status entry: %w", err)
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
