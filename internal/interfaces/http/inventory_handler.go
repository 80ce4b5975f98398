package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmestre/joyeria-api/internal/application/dto"
	"github.com/jmestre/joyeria-api/internal/application/inventory"
	"github.com/jmestre/joyeria-api/internal/domain"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del ledger de diamantes (protegido).
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateParcel godoc
// @Summary      Registrar lote de diamantes (recepción)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateParcelRequest  true  "parcel_id, total_carat, number_of_stones, atributos"
// @Success      201   {object}  dto.ParcelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parcels [post]
func (h *InventoryHandler) CreateParcel(c *fiber.Ctx) error {
	var in dto.CreateParcelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	parcel, err := h.uc.CreateParcel(c.Context(), inventory.CreateParcelInput{
		ParcelID:       in.ParcelID,
		Shape:          in.Shape,
		Color:          in.Color,
		Clarity:        in.Clarity,
		Supplier:       in.Supplier,
		TotalCarat:     in.TotalCarat,
		NumberOfStones: in.NumberOfStones,
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toParcelResponse(parcel))
}

// ListParcels godoc
// @Summary      Listar lotes en bóveda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ParcelResponse
// @Router       /api/parcels [get]
func (h *InventoryHandler) ListParcels(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListParcels(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapLedgerError(c, err)
	}
	out := make([]*dto.ParcelResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toParcelResponse(p))
	}
	return c.JSON(out)
}

// GetBalance godoc
// @Summary      Saldo actual de un lote
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "parcel_id"
// @Success      200  {object}  dto.ParcelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parcels/{id} [get]
func (h *InventoryHandler) GetBalance(c *fiber.Ctx) error {
	parcel, err := h.uc.GetBalance(c.Context(), c.Params("id"))
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(toParcelResponse(parcel))
}

// ValidateSufficiency godoc
// @Summary      Verificar suficiencia de un lote
// @Description  Un lote inexistente responde sufficient=false, nunca 404.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "parcel_id"
// @Param        ct_weight  query  string  false  "quilates requeridos"
// @Param        stones     query  int     false  "piedras requeridas"
// @Success      200  {object}  dto.SufficiencyResponse
// @Router       /api/parcels/{id}/sufficiency [get]
func (h *InventoryHandler) ValidateSufficiency(c *fiber.Ctx) error {
	var in dto.SufficiencyRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	parcelID := c.Params("id")
	ok, err := h.uc.ValidateSufficiency(c.Context(), parcelID, in.CtWeight, in.Stones)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(dto.SufficiencyResponse{ParcelID: parcelID, Sufficient: ok})
}

// Deduct godoc
// @Summary      Descontar diamantes de un lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "parcel_id"
// @Param        body  body  dto.DeductRequest  true  "ct_weight, stones, order_id, reason"
// @Success      200   {object}  dto.ParcelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parcels/{id}/deduct [post]
func (h *InventoryHandler) Deduct(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.DeductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	parcel, err := h.uc.Deduct(c.Context(), inventory.DeductInput{
		ParcelID: c.Params("id"),
		CtWeight: in.CtWeight,
		Stones:   in.Stones,
		OrderID:  in.OrderID,
		Reason:   in.Reason,
		ActorID:  actorID,
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(toParcelResponse(parcel))
}

// Restore godoc
// @Summary      Reponer diamantes en un lote
// @Description  Aditivo, sin tope superior; registra RESTORATION en el historial.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "parcel_id"
// @Param        body  body  dto.RestoreRequest  true  "ct_weight, stones, order_id, reason"
// @Success      200   {object}  dto.ParcelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parcels/{id}/restore [post]
func (h *InventoryHandler) Restore(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RestoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	parcel, err := h.uc.Restore(c.Context(), inventory.RestoreInput{
		ParcelID: c.Params("id"),
		CtWeight: in.CtWeight,
		Stones:   in.Stones,
		OrderID:  in.OrderID,
		Reason:   in.Reason,
		ActorID:  actorID,
	})
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(toParcelResponse(parcel))
}

// ListMovements godoc
// @Summary      Historial de movimientos de un lote
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "parcel_id"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/parcels/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListMovements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return mapLedgerError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// mapLedgerError traduce errores de dominio del ledger a códigos HTTP.
func mapLedgerError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrParcelNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PARCEL_NOT_FOUND", Message: "lote no encontrado"})
	}
	if err == domain.ErrInsufficientInventory {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_INVENTORY", Message: "inventario insuficiente"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el lote ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toParcelResponse(p *entity.DiamondParcel) *dto.ParcelResponse {
	return &dto.ParcelResponse{
		ParcelID:       p.ParcelID,
		Shape:          p.Shape,
		Color:          p.Color,
		Clarity:        p.Clarity,
		Supplier:       p.Supplier,
		TotalCarat:     p.TotalCarat,
		NumberOfStones: p.NumberOfStones,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toMovementResponse(m *entity.ParcelMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                   m.ID,
		ParcelID:             m.ParcelID,
		Type:                 m.Type,
		CtWeight:             m.CtWeight,
		Stones:               m.Stones,
		OrderID:              m.OrderID,
		Reason:               m.Reason,
		ResultingTotalWeight: m.ResultingTotalWeight,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt,
	}
}
