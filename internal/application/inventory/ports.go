package inventory

import (
	"context"

	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre el saldo del lote y su historial:
// el descuento y el registro de movimiento se confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parcelRepo repository.ParcelRepository,
		movRepo repository.ParcelMovementRepository,
	) error) error
}
