package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmestre/joyeria-api/internal/application/dto"
	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/application/usecase"
	"github.com/jmestre/joyeria-api/internal/domain"
)

// CustomerHandler maneja clientes (protegido).
type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
	orderUC    *orders.OrderUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(customerUC *usecase.CustomerUseCase, orderUC *orders.OrderUseCase) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC, orderUC: orderUC}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "name, email, phone, address"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.customerUC.Create(c.Context(), in)
	if err != nil {
		return mapCustomerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "customer id"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.customerUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapCustomerError(c, err)
	}
	return c.JSON(customer)
}

// List godoc
// @Summary      Listar o buscar clientes
// @Description  Con ?q= busca por nombre sin distinguir acentos ni mayúsculas.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "texto a buscar en el nombre"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.customerUC.List(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return mapCustomerError(c, err)
	}
	return c.JSON(list)
}

// ListOrders godoc
// @Summary      Pedidos de un cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "customer id"
// @Success      200  {array}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/orders [get]
func (h *CustomerHandler) ListOrders(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if _, err := h.customerUC.GetByID(c.Context(), customerID); err != nil {
		return mapCustomerError(c, err)
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.orderUC.ListOrdersByCustomer(c.Context(), customerID, page.Limit, page.Offset)
	if err != nil {
		return mapCustomerError(c, err)
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}

func mapCustomerError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrCustomerNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese email"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
