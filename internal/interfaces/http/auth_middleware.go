package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/pkg/jwt"
)

// Locals keys para los claims de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalUnitID = "unit_id"
	LocalRole   = "role"
	LocalClaims = "claims"
)

// SessionCookie cookie donde el login deja el token, alternativa al header Authorization.
const SessionCookie = "session"

// revocationChecker es el contrato mínimo que necesita el middleware para rechazar tokens
// cerrados con logout. Lo implementa *auth.AuthUseCase; nil desactiva la verificación.
type revocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// bearerToken extrae el token del header Authorization o, si no hay header, de la cookie.
// ok=false indica un header con formato inválido.
func bearerToken(c *fiber.Ctx) (token string, ok bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return strings.TrimSpace(c.Cookies(SessionCookie)), true
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware valida el JWT (Bearer o cookie de sesión) y carga los claims en c.Locals.
func AuthMiddleware(jwtSecret string, revoked revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "debe iniciar sesión"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo verificar la sesión"})
			}
			if isRevoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "la sesión fue cerrada"})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUnitID, claims.UnitID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole permite el paso a min y a los roles superiores en la jerarquía
// employee < supervisor < admin. Debe usarse DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE → el token no trae rol.
//   - 403 FORBIDDEN    → el rol no alcanza el mínimo (o es desconocido).
func RequireRole(min string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if !entity.RoleAtLeast(role, min) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUnitID devuelve la unidad del token; vacío para el admin.
func GetUnitID(c *fiber.Ctx) string { return localString(c, LocalUnitID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetClaims devuelve los claims completos (los usa el logout para revocar el jti).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

// scopeUnit decide sobre qué unidad actúa la petición: los que no son admin siempre
// sobre la de su token; el admin sobre la pedida (vacío = todas / primera coincidencia).
func scopeUnit(c *fiber.Ctx, requested string) string {
	if GetRole(c) == entity.RoleAdmin {
		return strings.TrimSpace(requested)
	}
	return GetUnitID(c)
}
