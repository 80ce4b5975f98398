package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrParcelNotFound        = errors.New("lote de diamantes no encontrado")
	ErrOrderNotFound         = errors.New("pedido no encontrado")
	ErrCustomerNotFound      = errors.New("cliente no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrInsufficientInventory = errors.New("inventario de diamantes insuficiente")
)
