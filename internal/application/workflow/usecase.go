package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// StatusWorkflowUseCase mantiene el historial de estados de los pedidos y el
// campo desnormalizado Order.Status.
//
// Invariante: Order.Status siempre es igual al Status de la entrada más
// reciente del historial; ambos se escriben en la misma transacción.
type StatusWorkflowUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	statusRepo   repository.OrderStatusRepository
	commentRepo  repository.OrderCommentRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier // opcional; nil deshabilita los avisos
}

// NewStatusWorkflowUseCase construye el caso de uso. notifier puede ser nil.
func NewStatusWorkflowUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	statusRepo repository.OrderStatusRepository,
	commentRepo repository.OrderCommentRepository,
	customerRepo repository.CustomerRepository,
	notifier Notifier,
) *StatusWorkflowUseCase {
	return &StatusWorkflowUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		statusRepo:   statusRepo,
		commentRepo:  commentRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// AppendStatus agrega una entrada al historial del pedido y actualiza su estado
// desnormalizado, ambos en la misma transacción. actorID viene del token del
// caller. El aviso al cliente es best-effort y corre después del commit.
func (uc *StatusWorkflowUseCase) AppendStatus(ctx context.Context, orderID, newStatus, comment, actorID string) (*entity.OrderStatusEntry, error) {
	if strings.TrimSpace(newStatus) == "" {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.Order
	entry := &entity.OrderStatusEntry{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Status:    newStatus,
		Comment:   comment,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		statusRepo repository.OrderStatusRepository,
	) error {
		var err error
		order, err = orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if err := statusRepo.Create(entry); err != nil {
			return err
		}
		if err := orderRepo.UpdateStatus(orderID, newStatus); err != nil {
			return err
		}
		order.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, order, entry)
	return entry, nil
}

// notify envía el aviso de cambio de estado si hay notifier y el cliente tiene email.
func (uc *StatusWorkflowUseCase) notify(ctx context.Context, order *entity.Order, entry *entity.OrderStatusEntry) {
	if uc.notifier == nil {
		return
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil || customer == nil || customer.Email == "" {
		return
	}
	if err := uc.notifier.NotifyStatusChange(ctx, order, entry, customer.Email); err != nil {
		log.Warn().Err(err).
			Str("order_id", order.ID).
			Str("status", entry.Status).
			Msg("no se pudo enviar el aviso de cambio de estado")
	}
}

// ListStatusHistory devuelve el historial del pedido en orden cronológico.
func (uc *StatusWorkflowUseCase) ListStatusHistory(ctx context.Context, orderID string) ([]*entity.OrderStatusEntry, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return uc.statusRepo.ListByOrder(orderID)
}

// AddComment registra una nota del pedido, independiente del historial de estados.
func (uc *StatusWorkflowUseCase) AddComment(ctx context.Context, orderID, body, actorID string) (*entity.OrderComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	comment := &entity.OrderComment{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Body:      body,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments devuelve las notas del pedido en orden cronológico.
func (uc *StatusWorkflowUseCase) ListComments(ctx context.Context, orderID string) ([]*entity.OrderComment, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return uc.commentRepo.ListByOrder(orderID)
}
