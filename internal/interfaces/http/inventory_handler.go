package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/inventory"
)

// InventoryHandler maneja ventas y reposiciones de stock (protegido).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Sell godoc
// @Summary      Vender piezas de un producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockChangeRequest  true  "quantity, unit_id (solo admin)"
// @Success      200   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sell [post]
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Sell(c.UserContext(), c.Params("id"), scopeUnit(c, in.UnitID), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Buy godoc
// @Summary      Reponer piezas de un producto
// @Description  Falla con DOES_NOT_FIT si las piezas no caben en el volumen libre de la unidad.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockChangeRequest  true  "quantity, unit_id (solo admin)"
// @Success      200   {object}  dto.StockChangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/buy [post]
func (h *InventoryHandler) Buy(c *fiber.Ctx) error {
	var in dto.StockChangeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Buy(c.UserContext(), c.Params("id"), scopeUnit(c, in.UnitID), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
