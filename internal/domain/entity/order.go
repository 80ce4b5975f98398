package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado inicial de todo pedido al crearse.
const OrderStatusNew = "Nuevo"

// Order representa un pedido de joyería.
// Status es una copia desnormalizada del último OrderStatusEntry del pedido;
// el servicio de workflow la mantiene sincronizada en la misma transacción
// en que inserta la entrada de historial.
type Order struct {
	ID          string
	OrderNumber string // consecutivo legible, ej. "ORD-2026-0143"
	CustomerID  string
	Description string
	Status      string // último estado del historial
	TotalPrice  decimal.Decimal
	DueDate     *time.Time
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
