package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/usecase"
)

// EmployeeHandler gestión de empleados de la unidad (supervisor o admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empleado en la unidad
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        unit_id  query  string  false  "Unidad (solo admin)"
// @Param        body     body   dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201      {object}  dto.UserResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), scopeUnit(c, c.Query("unit_id")), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empleados de la unidad
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        unit_id  query  string  false  "Unidad (solo admin)"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByUnit(c.UserContext(), scopeUnit(c, c.Query("unit_id")), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del empleado"
// @Param        unit_id  query  string  false  "Unidad (solo admin)"
// @Success      200      {object}  dto.UserResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), scopeUnit(c, c.Query("unit_id")), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado de la unidad
// @Tags         employees
// @Security     Bearer
// @Param        id       path   string  true   "ID del empleado"
// @Param        unit_id  query  string  false  "Unidad (solo admin)"
// @Success      204
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), scopeUnit(c, c.Query("unit_id")), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
