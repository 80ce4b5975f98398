package orders

import (
	"context"

	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función transaccional con los repositorios de pedidos.
// CreateOrder lo usa para que el pedido y su entrada inicial de historial
// nazcan juntos o no nazcan.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		statusRepo repository.OrderStatusRepository,
	) error) error
}

// OrderPDFGenerator genera la hoja resumen de un pedido.
// La implementación (Maroto) vive en infrastructure/pdf.
type OrderPDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.Order,
		customer *entity.Customer,
		history []*entity.OrderStatusEntry,
		movements []*entity.ParcelMovement,
	) ([]byte, error)
}
