package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCountResult resultado crudo del conteo de pedidos por estado.
type StatusCountResult struct {
	Status string
	Count  int
}

// VaultTotalsResult totales agregados de la bóveda de diamantes.
type VaultTotalsResult struct {
	ParcelCount    int
	TotalCarat     decimal.Decimal
	NumberOfStones int
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetVaultTotals devuelve lotes, quilates y piedras totales en bóveda.
	GetVaultTotals(ctx context.Context) (VaultTotalsResult, error)

	// CountParcelsBelow devuelve cuántos lotes tienen menos quilates que el umbral.
	CountParcelsBelow(ctx context.Context, caratThreshold decimal.Decimal) (int, error)

	// CountOrdersByStatus agrupa los pedidos por su estado actual.
	CountOrdersByStatus(ctx context.Context) ([]StatusCountResult, error)

	// CountMovementsSince cuenta los movimientos del ledger desde la fecha dada.
	CountMovementsSince(ctx context.Context, since time.Time) (int, error)
}
