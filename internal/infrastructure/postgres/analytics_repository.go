package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetVaultTotals devuelve lotes, quilates y piedras totales en bóveda.
func (r *AnalyticsRepo) GetVaultTotals(ctx context.Context) (repository.VaultTotalsResult, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_carat), 0), COALESCE(SUM(number_of_stones), 0)
		FROM diamond_parcels`
	var res repository.VaultTotalsResult
	err := r.q.QueryRow(ctx, query).Scan(&res.ParcelCount, &res.TotalCarat, &res.NumberOfStones)
	if err != nil {
		return repository.VaultTotalsResult{}, fmt.Errorf("vault totals: %w", err)
	}
	return res, nil
}

// CountParcelsBelow cuenta los lotes con menos quilates que el umbral.
func (r *AnalyticsRepo) CountParcelsBelow(ctx context.Context, caratThreshold decimal.Decimal) (int, error) {
	query := `SELECT COUNT(*) FROM diamond_parcels WHERE total_carat < $1`
	var n int
	if err := r.q.QueryRow(ctx, query, caratThreshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count parcels below threshold: %w", err)
	}
	return n, nil
}

// CountOrdersByStatus agrupa los pedidos por su estado actual.
func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context) ([]repository.StatusCountResult, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders GROUP BY status ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusCountResult
	for rows.Next() {
		var s repository.StatusCountResult
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountMovementsSince cuenta los movimientos del ledger desde la fecha dada.
func (r *AnalyticsRepo) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM parcel_movements WHERE created_at >= $1`
	var n int
	if err := r.q.QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements since: %w", err)
	}
	return n, nil
}
