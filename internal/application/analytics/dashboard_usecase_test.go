package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmestre/joyeria-api/internal/application/analytics"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve valores fijos; errVault fuerza el fallo de una
// de las cuatro consultas paralelas.
type fakeAnalyticsRepo struct {
	errVault error
}

func (r *fakeAnalyticsRepo) GetVaultTotals(ctx context.Context) (repository.VaultTotalsResult, error) {
	if r.errVault != nil {
		return repository.VaultTotalsResult{}, r.errVault
	}
	return repository.VaultTotalsResult{
		ParcelCount:    12,
		TotalCarat:     decimal.NewFromFloat(87.5),
		NumberOfStones: 340,
	}, nil
}

func (r *fakeAnalyticsRepo) CountParcelsBelow(ctx context.Context, caratThreshold decimal.Decimal) (int, error) {
	return 3, nil
}

func (r *fakeAnalyticsRepo) CountOrdersByStatus(ctx context.Context) ([]repository.StatusCountResult, error) {
	return []repository.StatusCountResult{
		{Status: "Nuevo", Count: 5},
		{Status: "En taller", Count: 2},
	}, nil
}

func (r *fakeAnalyticsRepo) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	return 41, nil
}

func TestGetSummary_AgregaLasCuatroConsultas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, summary.ParcelCount)
	assert.True(t, summary.TotalCarat.Equal(decimal.NewFromFloat(87.5)))
	assert.Equal(t, 340, summary.NumberOfStones)
	assert.Equal(t, 3, summary.LowStockParcels)
	assert.Equal(t, 41, summary.MovementsLast30)
	require.Len(t, summary.OrdersByStatus, 2)
	assert.Equal(t, "Nuevo", summary.OrdersByStatus[0].Status)
	assert.Equal(t, 5, summary.OrdersByStatus[0].Count)
}

func TestGetSummary_PropagaErrorDeConsulta(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{errVault: errors.New("conexión perdida")})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault totals")
}
