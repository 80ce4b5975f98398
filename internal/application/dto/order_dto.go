package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	OrderNumber string          `json:"order_number"`
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description,omitempty"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AppendStatusRequest body para POST /api/orders/:id/status.
type AppendStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// StatusEntryResponse entrada del historial de estados.
type StatusEntryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Comment   string    `json:"comment,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AddCommentRequest body para POST /api/orders/:id/comments.
type AddCommentRequest struct {
	Body string `json:"body"`
}

// CommentResponse nota de un pedido.
type CommentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
