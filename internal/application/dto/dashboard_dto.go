package dto

import "github.com/shopspring/decimal"

// StatusCountDTO conteo de pedidos para un estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardSummaryDTO resumen del dashboard del back-office.
type DashboardSummaryDTO struct {
	ParcelCount     int              `json:"parcel_count"`
	TotalCarat      decimal.Decimal  `json:"total_carat"`
	NumberOfStones  int              `json:"number_of_stones"`
	LowStockParcels int              `json:"low_stock_parcels"` // lotes bajo el umbral de quilates
	OrdersByStatus  []StatusCountDTO `json:"orders_by_status"`
	MovementsLast30 int              `json:"movements_last_30d"`
}
