package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger de diamantes.
const (
	MovementTypeDeduction   = "DEDUCTION"   // descuento por uso en un pedido
	MovementTypeRestoration = "RESTORATION" // reposición (cancelación, corrección manual)
)

// ParcelMovement es un registro inmutable del historial del ledger.
// CtWeight y Stones son magnitudes siempre positivas; la dirección la da Type.
type ParcelMovement struct {
	ID                   string
	ParcelID             string
	Type                 string          // DEDUCTION | RESTORATION
	CtWeight             decimal.Decimal // magnitud en quilates
	Stones               int             // magnitud en piedras
	OrderID              *string         // pedido que originó el movimiento; nil si es manual
	Reason               string          // ej. "piedra central", "corrección manual"
	ResultingTotalWeight decimal.Decimal // saldo de quilates del lote inmediatamente después
	CreatedBy            string          // UserID
	CreatedAt            time.Time
}
