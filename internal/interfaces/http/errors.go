package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorMapping struct {
	err    error
	status int
	code   string
}

// Orden importa: se usa el primer sentinel que coincida con errors.Is.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "INVALID_TOKEN"},
	{domain.ErrTokenRevoked, fiber.StatusUnauthorized, "INVALID_TOKEN"},
	{domain.ErrInvalidRole, fiber.StatusUnauthorized, "INVALID_ROLE"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnitNotFound, fiber.StatusNotFound, "UNIT_NOT_FOUND"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInsufficientQuantity, fiber.StatusUnprocessableEntity, "INSUFFICIENT_QUANTITY"},
	{domain.ErrProductDoesNotFit, fiber.StatusUnprocessableEntity, "DOES_NOT_FIT"},
	{domain.ErrSamePassword, fiber.StatusBadRequest, "SAME_PASSWORD"},
	{domain.ErrWrongPassword, fiber.StatusBadRequest, "WRONG_PASSWORD"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// respondError traduce un error de dominio a status + dto.ErrorResponse.
// Los errores no mapeados son 500 y no exponen el detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	// logger.New redirige el logger global de zerolog al de la app.
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no mapeado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// parseBody hace BodyParser + validación de tags `validate`. Si devuelve false ya respondió.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

// validationMessage arma "campo: regla" por cada campo inválido.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "datos inválidos"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

// pageParams lee limit/offset de la query con los límites de dto.PageRequest.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p.Limit, p.Offset
}
