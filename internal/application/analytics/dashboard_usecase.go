// Package analytics contiene el caso de uso read-only del dashboard del back-office.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/application/dto"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// Umbral de quilates bajo el cual un lote aparece como "stock bajo".
var lowStockThreshold = decimal.NewFromFloat(1.0)

const movementsWindow = 30 * 24 * time.Hour // ventana del contador de movimientos

// DashboardUseCase arma el resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No toca las
// tablas del ledger directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. GetVaultTotals          → lotes, quilates y piedras en bóveda
//  2. CountParcelsBelow       → lotes bajo el umbral de quilates
//  3. CountOrdersByStatus     → pedidos agrupados por estado actual
//  4. CountMovementsSince     → movimientos del ledger en los últimos 30 días
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type vaultResult struct {
		totals repository.VaultTotalsResult
		err    error
	}
	type countResult struct {
		n   int
		err error
	}
	type statusResult struct {
		counts []repository.StatusCountResult
		err    error
	}

	vaultCh := make(chan vaultResult, 1)
	lowCh := make(chan countResult, 1)
	statusCh := make(chan statusResult, 1)
	movCh := make(chan countResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetVaultTotals(ctx)
		vaultCh <- vaultResult{totals, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountParcelsBelow(ctx, lowStockThreshold)
		lowCh <- countResult{n, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.CountOrdersByStatus(ctx)
		statusCh <- statusResult{counts, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsSince(ctx, time.Now().Add(-movementsWindow))
		movCh <- countResult{n, err}
	}()

	vault := <-vaultCh
	low := <-lowCh
	status := <-statusCh
	mov := <-movCh

	if vault.err != nil {
		return nil, fmt.Errorf("vault totals: %w", vault.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("low stock parcels: %w", low.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("orders by status: %w", status.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("movements count: %w", mov.err)
	}

	byStatus := make([]dto.StatusCountDTO, 0, len(status.counts))
	for _, s := range status.counts {
		byStatus = append(byStatus, dto.StatusCountDTO{Status: s.Status, Count: s.Count})
	}

	return &dto.DashboardSummaryDTO{
		ParcelCount:     vault.totals.ParcelCount,
		TotalCarat:      vault.totals.TotalCarat,
		NumberOfStones:  vault.totals.NumberOfStones,
		LowStockParcels: low.n,
		OrdersByStatus:  byStatus,
		MovementsLast30: mov.n,
	}, nil
}
