package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

// LedgerUseCase mantiene el saldo de los lotes de diamantes (quilates y piedras)
// bajo descuentos y reposiciones concurrentes, con historial auditable.
//
// Invariante: total_carat >= 0 y number_of_stones >= 0 siempre. Deduct y Restore
// corren dentro de una transacción con bloqueo de fila (SELECT FOR UPDATE), así
// que dos descuentos concurrentes sobre el mismo lote se serializan y a lo sumo
// uno puede dejar el saldo en cero; el otro recibe ErrInsufficientInventory.
type LedgerUseCase struct {
	txRunner   TxRunner
	parcelRepo repository.ParcelRepository
	movRepo    repository.ParcelMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	parcelRepo repository.ParcelRepository,
	movRepo repository.ParcelMovementRepository,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, parcelRepo: parcelRepo, movRepo: movRepo}
}

// DeductInput entrada para Deduct. ActorID viene del token JWT del caller,
// nunca de estado ambiente dentro del servicio.
type DeductInput struct {
	ParcelID string
	CtWeight decimal.Decimal
	Stones   int
	OrderID  *string
	Reason   string
	ActorID  string
}

// RestoreInput entrada para Restore.
type RestoreInput struct {
	ParcelID string
	CtWeight decimal.Decimal
	Stones   int
	OrderID  *string
	Reason   string
	ActorID  string
}

// CreateParcelInput entrada para CreateParcel (recepción de lote).
type CreateParcelInput struct {
	ParcelID       string
	Shape          string
	Color          string
	Clarity        string
	Supplier       string
	TotalCarat     decimal.Decimal
	NumberOfStones int
}

// CreateParcel registra un lote nuevo en bóveda. El saldo inicial no puede ser negativo.
func (uc *LedgerUseCase) CreateParcel(ctx context.Context, in CreateParcelInput) (*entity.DiamondParcel, error) {
	if strings.TrimSpace(in.ParcelID) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalCarat.IsNegative() || in.NumberOfStones < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	parcel := &entity.DiamondParcel{
		ParcelID:       in.ParcelID,
		Shape:          in.Shape,
		Color:          in.Color,
		Clarity:        in.Clarity,
		Supplier:       in.Supplier,
		TotalCarat:     in.TotalCarat,
		NumberOfStones: in.NumberOfStones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.parcelRepo.Create(parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// GetBalance devuelve el saldo actual del lote. Sin efectos secundarios.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, parcelID string) (*entity.DiamondParcel, error) {
	parcel, err := uc.parcelRepo.Get(parcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, domain.ErrParcelNotFound
	}
	return parcel, nil
}

// ListParcels lista los lotes en bóveda con paginación.
func (uc *LedgerUseCase) ListParcels(ctx context.Context, limit, offset int) ([]*entity.DiamondParcel, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.parcelRepo.List(limit, offset)
}

// ValidateSufficiency lee el saldo actual y devuelve true si el lote cubre el
// peso y las piedras pedidos. Un lote inexistente cuenta como insuficiente
// (false), nunca como error.
func (uc *LedgerUseCase) ValidateSufficiency(ctx context.Context, parcelID string, ctWeight decimal.Decimal, stones int) (bool, error) {
	if ctWeight.IsNegative() || stones < 0 {
		return false, domain.ErrInvalidInput
	}
	parcel, err := uc.parcelRepo.Get(parcelID)
	if err != nil {
		return false, err
	}
	if parcel == nil {
		return false, nil
	}
	return parcel.HasSufficient(ctWeight, stones), nil
}

// Deduct descuenta peso y piedras de un lote por uso en un pedido.
//
// Corre dentro de una transacción: bloquea la fila del lote, verifica suficiencia
// contra el saldo bloqueado (no contra el que vio el caller), escribe el nuevo
// saldo y registra el movimiento DEDUCTION. Si el registro del movimiento falla,
// la transacción completa se revierte: saldo e historial nunca divergen.
func (uc *LedgerUseCase) Deduct(ctx context.Context, in DeductInput) (*entity.DiamondParcel, error) {
	if err := validateMagnitudes(in.CtWeight, in.Stones); err != nil {
		return nil, err
	}

	var updated *entity.DiamondParcel
	err := uc.txRunner.Run(ctx, func(
		parcelRepo repository.ParcelRepository,
		movRepo repository.ParcelMovementRepository,
	) error {
		parcel, err := parcelRepo.GetForUpdate(in.ParcelID)
		if err != nil {
			return err
		}
		if parcel == nil {
			return domain.ErrParcelNotFound
		}
		if !parcel.HasSufficient(in.CtWeight, in.Stones) {
			return domain.ErrInsufficientInventory
		}
		now := time.Now()
		parcel.TotalCarat = parcel.TotalCarat.Sub(in.CtWeight)
		parcel.NumberOfStones -= in.Stones
		parcel.UpdatedAt = now
		if err := parcelRepo.UpdateQuantities(parcel.ParcelID, parcel.TotalCarat, parcel.NumberOfStones); err != nil {
			return err
		}
		mov := &entity.ParcelMovement{
			ID:                   uuid.New().String(),
			ParcelID:             parcel.ParcelID,
			Type:                 entity.MovementTypeDeduction,
			CtWeight:             in.CtWeight,
			Stones:               in.Stones,
			OrderID:              in.OrderID,
			Reason:               in.Reason,
			ResultingTotalWeight: parcel.TotalCarat,
			CreatedBy:            in.ActorID,
			CreatedAt:            now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Restore repone peso y piedras en un lote (cancelación de pedido o corrección
// manual). Es aditivo: no hay verificación de suficiencia ni tope superior, un
// lote puede quedar por encima de su cantidad original. Registra RESTORATION
// en la misma transacción.
func (uc *LedgerUseCase) Restore(ctx context.Context, in RestoreInput) (*entity.DiamondParcel, error) {
	if err := validateMagnitudes(in.CtWeight, in.Stones); err != nil {
		return nil, err
	}

	var updated *entity.DiamondParcel
	err := uc.txRunner.Run(ctx, func(
		parcelRepo repository.ParcelRepository,
		movRepo repository.ParcelMovementRepository,
	) error {
		parcel, err := parcelRepo.GetForUpdate(in.ParcelID)
		if err != nil {
			return err
		}
		if parcel == nil {
			return domain.ErrParcelNotFound
		}
		now := time.Now()
		parcel.TotalCarat = parcel.TotalCarat.Add(in.CtWeight)
		parcel.NumberOfStones += in.Stones
		parcel.UpdatedAt = now
		if err := parcelRepo.UpdateQuantities(parcel.ParcelID, parcel.TotalCarat, parcel.NumberOfStones); err != nil {
			return err
		}
		mov := &entity.ParcelMovement{
			ID:                   uuid.New().String(),
			ParcelID:             parcel.ParcelID,
			Type:                 entity.MovementTypeRestoration,
			CtWeight:             in.CtWeight,
			Stones:               in.Stones,
			OrderID:              in.OrderID,
			Reason:               in.Reason,
			ResultingTotalWeight: parcel.TotalCarat,
			CreatedBy:            in.ActorID,
			CreatedAt:            now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated = parcel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListMovements devuelve el historial del lote, el más reciente primero.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, parcelID string, limit, offset int) ([]*entity.ParcelMovement, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListByParcel(parcelID, limit, offset)
}

// validateMagnitudes rechaza magnitudes negativas y el movimiento vacío (0 ct, 0 piedras).
func validateMagnitudes(ctWeight decimal.Decimal, stones int) error {
	if ctWeight.IsNegative() || stones < 0 {
		return domain.ErrInvalidInput
	}
	if ctWeight.IsZero() && stones == 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
