package repository

import "github.com/jmestre/joyeria-api/internal/domain/entity"

// ParcelMovementRepository define el puerto de persistencia del historial del ledger.
// La tabla es append-only: solo Create y lecturas.
type ParcelMovementRepository interface {
	Create(movement *entity.ParcelMovement) error
	// ListByParcel devuelve el historial del lote, el más reciente primero.
	ListByParcel(parcelID string, limit, offset int) ([]*entity.ParcelMovement, error)
	ListByOrder(orderID string) ([]*entity.ParcelMovement, error)
}
