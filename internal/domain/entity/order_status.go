package entity

import "time"

// OrderStatusEntry es una entrada del historial de estados de un pedido.
// El historial es append-only: orden de inserción = orden cronológico.
// Status es texto libre; la taxonomía de estados la configura el negocio,
// no hay enum cerrado.
type OrderStatusEntry struct {
	ID        string
	OrderID   string
	Status    string
	Comment   string // opcional
	CreatedBy string // UserID
	CreatedAt time.Time
}

// OrderComment es una nota visible del pedido, independiente del historial
// de estados (el taller registra notas al cliente por separado).
type OrderComment struct {
	ID        string
	OrderID   string
	Body      string
	CreatedBy string // UserID
	CreatedAt time.Time
}
