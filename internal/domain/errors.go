package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrUnitNotFound         = errors.New("unidad no encontrada")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInsufficientQuantity = errors.New("no hay suficientes unidades del producto en stock")
	ErrProductDoesNotFit    = errors.New("el producto no cabe en la unidad")
	ErrInvalidRole          = errors.New("rol inválido en el registro del usuario")
	ErrSamePassword         = errors.New("la contraseña nueva no puede ser igual a la anterior")
	ErrWrongPassword        = errors.New("la contraseña anterior es incorrecta")
	ErrTokenRevoked         = errors.New("token revocado")
)
