package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateParcelRequest body para POST /api/parcels (recepción de lote).
type CreateParcelRequest struct {
	ParcelID       string          `json:"parcel_id"`
	Shape          string          `json:"shape,omitempty"`
	Color          string          `json:"color,omitempty"`
	Clarity        string          `json:"clarity,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
	TotalCarat     decimal.Decimal `json:"total_carat"`
	NumberOfStones int             `json:"number_of_stones"`
}

// ParcelResponse saldo actual de un lote.
type ParcelResponse struct {
	ParcelID       string          `json:"parcel_id"`
	Shape          string          `json:"shape,omitempty"`
	Color          string          `json:"color,omitempty"`
	Clarity        string          `json:"clarity,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
	TotalCarat     decimal.Decimal `json:"total_carat"`
	NumberOfStones int             `json:"number_of_stones"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DeductRequest body para POST /api/parcels/:id/deduct.
type DeductRequest struct {
	CtWeight decimal.Decimal `json:"ct_weight"`
	Stones   int             `json:"stones"`
	OrderID  *string         `json:"order_id,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// RestoreRequest body para POST /api/parcels/:id/restore.
type RestoreRequest struct {
	CtWeight decimal.Decimal `json:"ct_weight"`
	Stones   int             `json:"stones"`
	OrderID  *string         `json:"order_id,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// SufficiencyRequest query para GET /api/parcels/:id/sufficiency.
type SufficiencyRequest struct {
	CtWeight decimal.Decimal `query:"ct_weight"`
	Stones   int             `query:"stones"`
}

// SufficiencyResponse resultado de la verificación de suficiencia.
type SufficiencyResponse struct {
	ParcelID   string `json:"parcel_id"`
	Sufficient bool   `json:"sufficient"`
}

// MovementResponse entrada del historial del ledger.
type MovementResponse struct {
	ID                   string          `json:"id"`
	ParcelID             string          `json:"parcel_id"`
	Type                 string          `json:"type"`
	CtWeight             decimal.Decimal `json:"ct_weight"`
	Stones               int             `json:"stones"`
	OrderID              *string         `json:"order_id,omitempty"`
	Reason               string          `json:"reason,omitempty"`
	ResultingTotalWeight decimal.Decimal `json:"resulting_total_weight"`
	CreatedBy            string          `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}
