package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD de pedidos.
type OrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, customerRepo: customerRepo}
}

// CreateOrderInput entrada para CreateOrder.
type CreateOrderInput struct {
	OrderNumber string
	CustomerID  string
	Description string
	TotalPrice  decimal.Decimal
	DueDate     *time.Time
	ActorID     string
}

// CreateOrder crea un pedido y siembra su historial con la entrada inicial
// ("Nuevo") en la misma transacción, para que el invariante del workflow
// (estado desnormalizado = última entrada) valga desde el primer instante.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if strings.TrimSpace(in.OrderNumber) == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		OrderNumber: in.OrderNumber,
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Status:      entity.OrderStatusNew,
		TotalPrice:  in.TotalPrice,
		DueDate:     in.DueDate,
		CreatedBy:   in.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		statusRepo repository.OrderStatusRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return statusRepo.Create(&entity.OrderStatusEntry{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Status:    entity.OrderStatusNew,
			CreatedBy: in.ActorID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder obtiene un pedido por ID.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders lista pedidos, opcionalmente filtrados por estado actual.
func (uc *OrderUseCase) ListOrders(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.List(status, limit, offset)
}

// ListOrdersByCustomer lista los pedidos de un cliente.
func (uc *OrderUseCase) ListOrdersByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.ListByCustomer(customerID, limit, offset)
}
