package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
)

// ParcelRepository define el puerto de persistencia del ledger de lotes (DIP).
// Get devuelve nil sin error si el lote no existe.
type ParcelRepository interface {
	Create(parcel *entity.DiamondParcel) error
	Get(parcelID string) (*entity.DiamondParcel, error)
	// GetForUpdate obtiene el lote bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(parcelID string) (*entity.DiamondParcel, error)
	// UpdateQuantities escribe el nuevo saldo (quilates y piedras) del lote.
	UpdateQuantities(parcelID string, totalCarat decimal.Decimal, numberOfStones int) error
	List(limit, offset int) ([]*entity.DiamondParcel, error)
}
