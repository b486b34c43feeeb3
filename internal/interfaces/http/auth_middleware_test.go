package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/logistics-api/internal/interfaces/http"
	"github.com/jhoicas/logistics-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/logistics-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUnitID    = "u1"
	testIssuer    = "logistics-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(minRole string, revoked *memory.TokenBlacklist) *fiber.App {
	app := fiber.New()
	var checker interface {
		IsRevoked(ctx context.Context, jti string) (bool, error)
	}
	if revoked != nil {
		checker = revoked
	}
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, checker),
		apphttp.RequireRole(minRole),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"unit_id": apphttp.GetUnitID(c),
			})
		},
	)
	return app
}

func rawToken(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUnitID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// tokenForRole genera un header Authorization con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	return "Bearer " + rawToken(t, role)
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin", nil)
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
	assert.Equal(t, testUnitID, body["unit_id"])
}

// La jerarquía deja pasar a los roles superiores.
func TestRequireRole_JerarquiaPermiteRolesSuperiores(t *testing.T) {
	app := buildTestApp("employee", nil)
	for _, role := range []string{"employee", "supervisor", "admin"} {
		resp := doRequest(t, app, tokenForRole(t, role))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s debe poder acceder a ruta de employee", role)
		resp.Body.Close()
	}
}

func TestRequireRole_EmployeeBloqueadoEnRutaSupervisor(t *testing.T) {
	app := buildTestApp("supervisor", nil)
	resp := doRequest(t, app, tokenForRole(t, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"employee no debe poder acceder a ruta de supervisor")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

func TestRequireRole_SupervisorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin", nil)
	resp := doRequest(t, app, tokenForRole(t, "supervisor"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp("employee", nil)
	resp := doRequest(t, app, tokenForRole(t, "root"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "un rol fuera de la jerarquía no pasa")
}

// Token sin rol → 401 MISSING_ROLE.
func TestRequireRole_TokenSinRol(t *testing.T) {
	app := buildTestApp("employee", nil)
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp("admin", nil)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin token debe devolver 401")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp("admin", nil)
	resp := doRequest(t, app, "Bearer esto.no.es.un.jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token malformado debe devolver 401")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoHeaderIncorrecto(t *testing.T) {
	app := buildTestApp("admin", nil)
	resp := doRequest(t, app, "Token "+rawToken(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"header sin prefijo Bearer debe devolver 401")
}

func TestAuthMiddleware_AceptaCookieDeSesion(t *testing.T) {
	app := buildTestApp("employee", nil)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: rawToken(t, "employee")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la cookie session debe servir como credencial")
}

func TestAuthMiddleware_TokenRevocado(t *testing.T) {
	blacklist := memory.NewTokenBlacklist()
	app := buildTestApp("employee", blacklist)
	tok := rawToken(t, "employee")

	resp := doRequest(t, app, "Bearer "+tok)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Hour))

	resp = doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "un token revocado no debe pasar")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LoginRateLimiter
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginRateLimiter_BloqueaAlAgotarBurst(t *testing.T) {
	app := fiber.New()
	limiter := apphttp.NewLoginRateLimiter(0.001, 2)
	app.Post("/login", limiter.Handler(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
		resp.Body.Close()
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLoginRateLimiter_CeroDesactiva(t *testing.T) {
	app := fiber.New()
	limiter := apphttp.NewLoginRateLimiter(0, 1)
	app.Post("/login", limiter.Handler(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
