package repository

import "github.com/jmestre/joyeria-api/internal/domain/entity"

// OrderStatusRepository define el puerto del historial de estados (append-only).
type OrderStatusRepository interface {
	Create(entry *entity.OrderStatusEntry) error
	// ListByOrder devuelve el historial en orden cronológico (created_at ASC).
	ListByOrder(orderID string) ([]*entity.OrderStatusEntry, error)
}

// OrderCommentRepository define el puerto de notas del pedido.
type OrderCommentRepository interface {
	Create(comment *entity.OrderComment) error
	// ListByOrder devuelve las notas en orden cronológico.
	ListByOrder(orderID string) ([]*entity.OrderComment, error)
}
