package workflow

import (
	"context"

	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de pedidos atados a esa tx. La inserción de la entrada de
// historial y la actualización del estado desnormalizado del pedido se
// confirman o se revierten juntas.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		statusRepo repository.OrderStatusRepository,
	) error) error
}

// Notifier avisa al cliente de un cambio de estado (ej. correo SMTP).
// Es best-effort: el workflow nunca falla un cambio de estado por un aviso
// que no se pudo enviar.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, order *entity.Order, entry *entity.OrderStatusEntry, customerEmail string) error
}
