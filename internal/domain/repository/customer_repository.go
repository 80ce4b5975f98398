package repository

import "github.com/jmestre/joyeria-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// Search busca por nombre normalizado (sin acentos, case-insensitive).
	Search(normalizedName string, limit, offset int) ([]*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
