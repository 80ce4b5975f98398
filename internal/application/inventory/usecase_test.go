package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmestre/joyeria-api/internal/application/inventory"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeParcelRepo guarda lotes en un map. No es concurrente por sí mismo: la
// serialización la da fakeTxRunner, igual que en producción la da el row lock.
type fakeParcelRepo struct {
	parcels map[string]*entity.DiamondParcel
}

func newFakeParcelRepo() *fakeParcelRepo {
	return &fakeParcelRepo{parcels: make(map[string]*entity.DiamondParcel)}
}

func (r *fakeParcelRepo) Create(p *entity.DiamondParcel) error {
	if _, ok := r.parcels[p.ParcelID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.parcels[p.ParcelID] = &cp
	return nil
}

func (r *fakeParcelRepo) Get(parcelID string) (*entity.DiamondParcel, error) {
	p, ok := r.parcels[parcelID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeParcelRepo) GetForUpdate(parcelID string) (*entity.DiamondParcel, error) {
	return r.Get(parcelID)
}

func (r *fakeParcelRepo) UpdateQuantities(parcelID string, totalCarat decimal.Decimal, numberOfStones int) error {
	p, ok := r.parcels[parcelID]
	if !ok {
		return domain.ErrParcelNotFound
	}
	p.TotalCarat = totalCarat
	p.NumberOfStones = numberOfStones
	return nil
}

func (r *fakeParcelRepo) List(limit, offset int) ([]*entity.DiamondParcel, error) {
	out := make([]*entity.DiamondParcel, 0, len(r.parcels))
	for _, p := range r.parcels {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// fakeMovementRepo acumula movimientos en un slice append-only.
type fakeMovementRepo struct {
	movements []*entity.ParcelMovement
}

func (r *fakeMovementRepo) Create(m *entity.ParcelMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByParcel(parcelID string, limit, offset int) ([]*entity.ParcelMovement, error) {
	var out []*entity.ParcelMovement
	for i := len(r.movements) - 1; i >= 0; i-- { // más reciente primero
		if r.movements[i].ParcelID == parcelID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByOrder(orderID string) ([]*entity.ParcelMovement, error) {
	var out []*entity.ParcelMovement
	for _, m := range r.movements {
		if m.OrderID != nil && *m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner serializa las transacciones con un mutex, emulando el efecto del
// SELECT FOR UPDATE sobre el mismo lote: dos Deduct concurrentes nunca ven el
// mismo saldo a la vez.
type fakeTxRunner struct {
	mu         sync.Mutex
	parcelRepo *fakeParcelRepo
	movRepo    *fakeMovementRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(repository.ParcelRepository, repository.ParcelMovementRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return fn(tx.parcelRepo, tx.movRepo)
}

// newLedger arma el caso de uso con fakes y un lote inicial opcional.
func newLedger(t *testing.T) (*inventory.LedgerUseCase, *fakeParcelRepo, *fakeMovementRepo) {
	t.Helper()
	parcelRepo := newFakeParcelRepo()
	movRepo := &fakeMovementRepo{}
	txRunner := &fakeTxRunner{parcelRepo: parcelRepo, movRepo: movRepo}
	return inventory.NewLedgerUseCase(txRunner, parcelRepo, movRepo), parcelRepo, movRepo
}

func seedParcel(t *testing.T, uc *inventory.LedgerUseCase, id string, carat float64, stones int) {
	t.Helper()
	_, err := uc.CreateParcel(context.Background(), inventory.CreateParcelInput{
		ParcelID:       id,
		Shape:          "Round",
		Color:          "G",
		Clarity:        "VS1",
		Supplier:       "Antwerp Gems",
		TotalCarat:     decimal.NewFromFloat(carat),
		NumberOfStones: stones,
	})
	require.NoError(t, err)
}

func ct(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// CreateParcel / GetBalance
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateParcel_RechazaSaldoNegativo(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.CreateParcel(context.Background(), inventory.CreateParcelInput{
		ParcelID:   "P-001",
		TotalCarat: ct(-1),
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestCreateParcel_RechazaParcelIDVacio(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.CreateParcel(context.Background(), inventory.CreateParcelInput{
		ParcelID:   "   ",
		TotalCarat: ct(1),
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestGetBalance_LoteInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.GetBalance(context.Background(), "NO-EXISTE")
	assert.Equal(t, domain.ErrParcelNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateSufficiency
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSufficiency_Casos(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)
	ctx := context.Background()

	// Cubre exactamente el saldo → suficiente
	ok, err := uc.ValidateSufficiency(ctx, "P-001", ct(5.0), 10)
	require.NoError(t, err)
	assert.True(t, ok, "pedir exactamente el saldo debe ser suficiente")

	// Peso excede → insuficiente
	ok, err = uc.ValidateSufficiency(ctx, "P-001", ct(5.01), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// Piedras exceden → insuficiente aunque sobre peso
	ok, err = uc.ValidateSufficiency(ctx, "P-001", ct(0.5), 11)
	require.NoError(t, err)
	assert.False(t, ok)

	// Lote inexistente → insuficiente, sin error
	ok, err = uc.ValidateSufficiency(ctx, "NO-EXISTE", ct(1), 1)
	require.NoError(t, err)
	assert.False(t, ok, "lote inexistente cuenta como insuficiente, no como error")

	// Magnitud negativa → error de validación
	_, err = uc.ValidateSufficiency(ctx, "P-001", ct(-1), 1)
	assert.Equal(t, domain.ErrInvalidInput, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deduct
// ──────────────────────────────────────────────────────────────────────────────

func TestDeduct_ActualizaSaldoYRegistraMovimiento(t *testing.T) {
	uc, _, movRepo := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)
	orderID := "ORD-001"

	parcel, err := uc.Deduct(context.Background(), inventory.DeductInput{
		ParcelID: "P-001",
		CtWeight: ct(2.0),
		Stones:   3,
		OrderID:  &orderID,
		Reason:   "engaste anillo",
		ActorID:  "user-1",
	})
	require.NoError(t, err)

	assert.True(t, parcel.TotalCarat.Equal(ct(3.0)), "saldo esperado 3.0 ct, fue %s", parcel.TotalCarat)
	assert.Equal(t, 7, parcel.NumberOfStones)

	// El movimiento queda registrado con el saldo resultante
	movs, err := movRepo.ListByParcel("P-001", 10, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	mov := movs[0]
	assert.Equal(t, entity.MovementTypeDeduction, mov.Type)
	assert.True(t, mov.CtWeight.Equal(ct(2.0)))
	assert.Equal(t, 3, mov.Stones)
	assert.True(t, mov.ResultingTotalWeight.Equal(ct(3.0)))
	assert.Equal(t, "user-1", mov.CreatedBy)
	require.NotNil(t, mov.OrderID)
	assert.Equal(t, "ORD-001", *mov.OrderID)
}

func TestDeduct_Insuficiente_NoTocaElSaldo(t *testing.T) {
	uc, _, movRepo := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)

	// 6 ct sobre un lote de 5 ct → rechazo sin cambios
	_, err := uc.Deduct(context.Background(), inventory.DeductInput{
		ParcelID: "P-001",
		CtWeight: ct(6.0),
		Stones:   1,
		ActorID:  "user-1",
	})
	assert.Equal(t, domain.ErrInsufficientInventory, err)

	parcel, err := uc.GetBalance(context.Background(), "P-001")
	require.NoError(t, err)
	assert.True(t, parcel.TotalCarat.Equal(ct(5.0)), "el saldo no debe cambiar tras un rechazo")
	assert.Equal(t, 10, parcel.NumberOfStones)

	movs, _ := movRepo.ListByParcel("P-001", 10, 0)
	assert.Empty(t, movs, "un descuento rechazado no registra movimiento")
}

func TestDeduct_HastaCero_EsValido(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)

	parcel, err := uc.Deduct(context.Background(), inventory.DeductInput{
		ParcelID: "P-001",
		CtWeight: ct(5.0),
		Stones:   10,
		ActorID:  "user-1",
	})
	require.NoError(t, err)
	assert.True(t, parcel.TotalCarat.IsZero())
	assert.Equal(t, 0, parcel.NumberOfStones)
}

func TestDeduct_LoteInexistente(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.Deduct(context.Background(), inventory.DeductInput{
		ParcelID: "NO-EXISTE",
		CtWeight: ct(1.0),
		Stones:   1,
		ActorID:  "user-1",
	})
	assert.Equal(t, domain.ErrParcelNotFound, err)
}

func TestDeduct_MagnitudesInvalidas(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)
	ctx := context.Background()

	// Peso negativo
	_, err := uc.Deduct(ctx, inventory.DeductInput{ParcelID: "P-001", CtWeight: ct(-1), Stones: 1, ActorID: "u"})
	assert.Equal(t, domain.ErrInvalidInput, err)

	// Piedras negativas
	_, err = uc.Deduct(ctx, inventory.DeductInput{ParcelID: "P-001", CtWeight: ct(1), Stones: -1, ActorID: "u"})
	assert.Equal(t, domain.ErrInvalidInput, err)

	// Movimiento vacío (0 ct, 0 piedras)
	_, err = uc.Deduct(ctx, inventory.DeductInput{ParcelID: "P-001", CtWeight: ct(0), Stones: 0, ActorID: "u"})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

// Solo piedras, sin peso: válido (piedras de inventario sin pesar individualmente).
func TestDeduct_SoloPiedras(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)

	parcel, err := uc.Deduct(context.Background(), inventory.DeductInput{
		ParcelID: "P-001",
		CtWeight: ct(0),
		Stones:   2,
		ActorID:  "user-1",
	})
	require.NoError(t, err)
	assert.True(t, parcel.TotalCarat.Equal(ct(5.0)))
	assert.Equal(t, 8, parcel.NumberOfStones)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestRestore_DeductMasRestore_VuelveAlSaldoOriginal(t *testing.T) {
	uc, _, movRepo := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)
	ctx := context.Background()

	_, err := uc.Deduct(ctx, inventory.DeductInput{
		ParcelID: "P-001", CtWeight: ct(2.0), Stones: 3, ActorID: "user-1",
	})
	require.NoError(t, err)

	parcel, err := uc.Restore(ctx, inventory.RestoreInput{
		ParcelID: "P-001", CtWeight: ct(2.0), Stones: 3,
		Reason: "pedido cancelado", ActorID: "user-1",
	})
	require.NoError(t, err)

	assert.True(t, parcel.TotalCarat.Equal(ct(5.0)), "deduct+restore de las mismas magnitudes debe restituir el saldo")
	assert.Equal(t, 10, parcel.NumberOfStones)

	// Dos movimientos en el historial, el RESTORATION primero (más reciente)
	movs, _ := movRepo.ListByParcel("P-001", 10, 0)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTypeRestoration, movs[0].Type)
	assert.Equal(t, entity.MovementTypeDeduction, movs[1].Type)
}

// Restore es aditivo sin tope: una corrección manual puede dejar el lote por
// encima de su cantidad original.
func TestRestore_SinTopeSuperior(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)

	parcel, err := uc.Restore(context.Background(), inventory.RestoreInput{
		ParcelID: "P-001", CtWeight: ct(1.5), Stones: 2,
		Reason: "ajuste por repesaje", ActorID: "admin-1",
	})
	require.NoError(t, err)
	assert.True(t, parcel.TotalCarat.Equal(ct(6.5)))
	assert.Equal(t, 12, parcel.NumberOfStones)
}

func TestRestore_LoteInexistente(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.Restore(context.Background(), inventory.RestoreInput{
		ParcelID: "NO-EXISTE", CtWeight: ct(1), Stones: 1, ActorID: "u",
	})
	assert.Equal(t, domain.ErrParcelNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia — dos descuentos sobre el mismo lote
// ──────────────────────────────────────────────────────────────────────────────

// Lote de 5 ct; dos goroutines piden 4 ct y 5 ct a la vez. El row lock (aquí,
// el mutex del fakeTxRunner) serializa: exactamente una gana y la otra recibe
// ErrInsufficientInventory; el saldo nunca queda negativo.
func TestDeduct_Concurrente_SoloUnoGana(t *testing.T) {
	uc, _, movRepo := newLedger(t)
	seedParcel(t, uc, "P-001", 5.0, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	weights := []decimal.Decimal{ct(4.0), ct(5.0)}
	for i := range weights {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Deduct(context.Background(), inventory.DeductInput{
				ParcelID: "P-001",
				CtWeight: weights[i],
				Stones:   1,
				ActorID:  "user-1",
			})
		}(i)
	}
	wg.Wait()

	var okCount, insufficientCount int
	for _, err := range errs {
		switch err {
		case nil:
			okCount++
		case domain.ErrInsufficientInventory:
			insufficientCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente un descuento debe ganar")
	assert.Equal(t, 1, insufficientCount, "el otro debe ser rechazado por insuficiencia")

	parcel, err := uc.GetBalance(context.Background(), "P-001")
	require.NoError(t, err)
	assert.False(t, parcel.TotalCarat.IsNegative(), "el saldo nunca puede quedar negativo")

	movs, _ := movRepo.ListByParcel("P-001", 10, 0)
	assert.Len(t, movs, 1, "solo el descuento ganador registra movimiento")
}

// Muchos descuentos pequeños concurrentes: la suma de los aceptados nunca
// excede el saldo inicial.
func TestDeduct_ConcurrenteMasivo_NuncaNegativo(t *testing.T) {
	uc, _, _ := newLedger(t)
	seedParcel(t, uc, "P-001", 10.0, 100)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// 1 ct cada uno; solo caben 10
			_, _ = uc.Deduct(context.Background(), inventory.DeductInput{
				ParcelID: "P-001", CtWeight: ct(1.0), Stones: 1, ActorID: "user-1",
			})
		}()
	}
	wg.Wait()

	parcel, err := uc.GetBalance(context.Background(), "P-001")
	require.NoError(t, err)
	assert.False(t, parcel.TotalCarat.IsNegative())
	assert.GreaterOrEqual(t, parcel.NumberOfStones, 0)
	assert.True(t, parcel.TotalCarat.IsZero(), "con 20 intentos de 1 ct sobre 10 ct el saldo termina en cero")
}
