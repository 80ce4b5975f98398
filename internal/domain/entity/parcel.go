package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiamondParcel representa un lote (parcel) de diamantes en bóveda.
// El saldo vivo son TotalCarat y NumberOfStones; ambos se mutan únicamente
// a través de Deduct/Restore del servicio de inventario y nunca pueden
// quedar negativos.
type DiamondParcel struct {
	ParcelID       string // identificador de negocio del lote (único)
	Shape          string // round, princess, oval, ...
	Color          string // D-Z
	Clarity        string // FL, VVS1, VS2, ...
	Supplier       string
	TotalCarat     decimal.Decimal // peso total en quilates disponible
	NumberOfStones int             // cantidad de piedras disponibles
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasSufficient indica si el lote puede cubrir el peso y la cantidad de piedras pedidos.
func (p *DiamondParcel) HasSufficient(ctWeight decimal.Decimal, stones int) bool {
	return p.TotalCarat.GreaterThanOrEqual(ctWeight) && p.NumberOfStones >= stones
}
