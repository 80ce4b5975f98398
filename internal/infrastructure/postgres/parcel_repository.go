package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/internal/domain/repository"
)

var _ repository.ParcelRepository = (*ParcelRepo)(nil)

// ParcelRepo implementación de ParcelRepository sobre PostgreSQL (usable con pool o tx).
type ParcelRepo struct {
	q Querier
}

// NewParcelRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewParcelRepository(q Querier) *ParcelRepo {
	return &ParcelRepo{q: q}
}

const parcelColumns = `parcel_id, shape, color, clarity, supplier, total_carat, number_of_stones, created_at, updated_at`

// Create registra un lote nuevo en bóveda.
func (r *ParcelRepo) Create(parcel *entity.DiamondParcel) error {
	query := `
		INSERT INTO diamond_parcels (` + parcelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		parcel.ParcelID, parcel.Shape, parcel.Color, parcel.Clarity, parcel.Supplier,
		parcel.TotalCarat, parcel.NumberOfStones, parcel.CreatedAt, parcel.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert parcel: %w", err)
	}
	return nil
}

// Get obtiene el saldo actual de un lote. Devuelve nil si no existe.
func (r *ParcelRepo) Get(parcelID string) (*entity.DiamondParcel, error) {
	query := `
		SELECT ` + parcelColumns + `
		FROM diamond_parcels WHERE parcel_id = $1`
	return r.scanOne(query, parcelID, "get parcel")
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
// Dos descuentos concurrentes sobre el mismo lote se serializan aquí.
func (r *ParcelRepo) GetForUpdate(parcelID string) (*entity.DiamondParcel, error) {
	query := `
		SELECT ` + parcelColumns + `
		FROM diamond_parcels WHERE parcel_id = $1
		FOR UPDATE`
	return r.scanOne(query, parcelID, "get parcel for update")
}

// UpdateQuantities escribe el nuevo saldo del lote.
// El CHECK (total_carat >= 0 AND number_of_stones >= 0) de la tabla es la última
// línea de defensa del invariante; el caso de uso valida antes.
func (r *ParcelRepo) UpdateQuantities(parcelID string, totalCarat decimal.Decimal, numberOfStones int) error {
	query := `
		UPDATE diamond_parcels
		SET total_carat = $2, number_of_stones = $3, updated_at = now()
		WHERE parcel_id = $1`
	tag, err := r.q.Exec(context.Background(), query, parcelID, totalCarat, numberOfStones)
	if err != nil {
		return fmt.Errorf("update parcel quantities: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParcelNotFound
	}
	return nil
}

// List lista los lotes ordenados por identificador.
func (r *ParcelRepo) List(limit, offset int) ([]*entity.DiamondParcel, error) {
	query := `
		SELECT ` + parcelColumns + `
		FROM diamond_parcels ORDER BY parcel_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiamondParcel
	for rows.Next() {
		var p entity.DiamondParcel
		if err := rows.Scan(&p.ParcelID, &p.Shape, &p.Color, &p.Clarity, &p.Supplier,
			&p.TotalCarat, &p.NumberOfStones, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan parcel: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ParcelRepo) scanOne(query, parcelID, op string) (*entity.DiamondParcel, error) {
	var p entity.DiamondParcel
	err := r.q.QueryRow(context.Background(), query, parcelID).Scan(
		&p.ParcelID, &p.Shape, &p.Color, &p.Clarity, &p.Supplier,
		&p.TotalCarat, &p.NumberOfStones, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
