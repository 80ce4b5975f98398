package repository

import "github.com/jmestre/joyeria-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia de pedidos.
// GetByID devuelve nil sin error si el pedido no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus escribe el estado desnormalizado del pedido. El workflow lo
	// invoca en la misma transacción en que inserta la entrada de historial.
	UpdateStatus(orderID, status string) error
	List(status string, limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error)
}
