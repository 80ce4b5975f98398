package orders

import (
	"context"

	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// PDFUseCase genera la hoja resumen en PDF de un pedido: datos del cliente,
// historial de estados y diamantes consumidos del ledger.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	statusRepo   repository.OrderStatusRepository
	movRepo      repository.ParcelMovementRepository
	generator    OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	statusRepo repository.OrderStatusRepository,
	movRepo repository.ParcelMovementRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		statusRepo:   statusRepo,
		movRepo:      movRepo,
		generator:    generator,
	}
}

// GetOrderPDF arma los datos del pedido y delega el render en el generador.
func (uc *PDFUseCase) GetOrderPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	history, err := uc.statusRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrderPDF(ctx, order, customer, history, movements)
}
