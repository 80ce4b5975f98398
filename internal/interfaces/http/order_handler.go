package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmestre/joyeria-api/internal/application/dto"
	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/application/workflow"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
)

// OrderHandler maneja pedidos, workflow de estados y notas (protegido).
type OrderHandler struct {
	orderUC    *orders.OrderUseCase
	workflowUC *workflow.StatusWorkflowUseCase
	pdfUC      *orders.PDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orderUC *orders.OrderUseCase, workflowUC *workflow.StatusWorkflowUseCase, pdfUC *orders.PDFUseCase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, workflowUC: workflowUC, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Crea el pedido y siembra el historial con el estado inicial "Nuevo".
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "order_number, customer_id, total_price, ..."
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.CreateOrder(c.Context(), orders.CreateOrderInput{
		OrderNumber: in.OrderNumber,
		CustomerID:  in.CustomerID,
		Description: in.Description,
		TotalPrice:  in.TotalPrice,
		DueDate:     in.DueDate,
		ActorID:     actorID,
	})
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orderUC.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "filtrar por estado actual"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.orderUC.ListOrders(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return mapOrderError(c, err)
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}

// AppendStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Agrega la entrada al historial y actualiza el estado desnormalizado en la misma transacción.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "order id"
// @Param        body  body  dto.AppendStatusRequest  true  "status, comment"
// @Success      201   {object}  dto.StatusEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [post]
func (h *OrderHandler) AppendStatus(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AppendStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.workflowUC.AppendStatus(c.Context(), c.Params("id"), in.Status, in.Comment, actorID)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStatusEntryResponse(entry))
}

// ListStatusHistory godoc
// @Summary      Historial de estados del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {array}  dto.StatusEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [get]
func (h *OrderHandler) ListStatusHistory(c *fiber.Ctx) error {
	list, err := h.workflowUC.ListStatusHistory(c.Context(), c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	out := make([]*dto.StatusEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toStatusEntryResponse(e))
	}
	return c.JSON(out)
}

// AddComment godoc
// @Summary      Agregar nota al pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "order id"
// @Param        body  body  dto.AddCommentRequest  true  "body"
// @Success      201   {object}  dto.CommentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/comments [post]
func (h *OrderHandler) AddComment(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AddCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	comment, err := h.workflowUC.AddComment(c.Context(), c.Params("id"), in.Body, actorID)
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCommentResponse(comment))
}

// ListComments godoc
// @Summary      Notas del pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {array}  dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/comments [get]
func (h *OrderHandler) ListComments(c *fiber.Ctx) error {
	list, err := h.workflowUC.ListComments(c.Context(), c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	out := make([]*dto.CommentResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, toCommentResponse(cm))
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Hoja resumen del pedido en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "order id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) GetPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.GetOrderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="pedido.pdf"`)
	return c.Send(pdfBytes)
}

// mapOrderError traduce errores de dominio de pedidos a códigos HTTP.
func mapOrderError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrOrderNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido no encontrado"})
	}
	if err == domain.ErrCustomerNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el número de pedido ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Description: o.Description,
		Status:      o.Status,
		TotalPrice:  o.TotalPrice,
		DueDate:     o.DueDate,
		CreatedAt:   o.CreatedAt,
	}
}

func toStatusEntryResponse(e *entity.OrderStatusEntry) *dto.StatusEntryResponse {
	return &dto.StatusEntryResponse{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Status:    e.Status,
		Comment:   e.Comment,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

func toCommentResponse(cm *entity.OrderComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:        cm.ID,
		OrderID:   cm.OrderID,
		Body:      cm.Body,
		CreatedBy: cm.CreatedBy,
		CreatedAt: cm.CreatedAt,
	}
}
