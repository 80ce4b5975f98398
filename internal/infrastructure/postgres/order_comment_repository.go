package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

var _ repository.OrderCommentRepository = (*OrderCommentRepo)(nil)

// OrderCommentRepo implementación de notas de pedido sobre PostgreSQL.
type OrderCommentRepo struct {
	q Querier
}

// NewOrderCommentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderCommentRepository(q Querier) *OrderCommentRepo {
	return &OrderCommentRepo{q: q}
}

// Create inserta una nota.
func (r *OrderCommentRepo) Create(comment *entity.OrderComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_comments (id, order_id, body, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.OrderID, comment.Body, comment.CreatedBy, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create order comment: %w", err)
	}
	return nil
}

// ListByOrder devuelve las notas en orden cronológico.
func (r *OrderCommentRepo) ListByOrder(orderID string) ([]*entity.OrderComment, error) {
	query := `
		SELECT id, order_id, body, created_by, created_at
		FROM order_comments WHERE order_id = $1
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order comments: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderComment
	for rows.Next() {
		var c entity.OrderComment
		if err := rows.Scan(&c.ID, &c.OrderID, &c.Body, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order comment: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
