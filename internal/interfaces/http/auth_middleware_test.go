package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-pruebas"

// buildTestApp monta una ruta protegida y otra solo-admin, como hace el router real.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/protegida", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	protected.Delete("/solo-admin", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, "user-123", role, "almacen-api", 60)
	require.NoError(t, err, "generar el token de prueba no debe fallar")
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nethttp.MethodGet, "/protegida", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "sin Authorization debe ser 401")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nethttp.MethodGet, "/protegida", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secreto", "user-123", entity.RoleStaff, "almacen-api", 60)
	require.NoError(t, err)
	resp := doRequest(t, app, nethttp.MethodGet, "/protegida", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "firma con otro secreto debe ser 401")
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate(testJWTSecret, "user-123", entity.RoleStaff, "almacen-api", -5)
	require.NoError(t, err)
	resp := doRequest(t, app, nethttp.MethodGet, "/protegida", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "token vencido debe ser 401")
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nethttp.MethodGet, "/protegida", tokenForRole(t, entity.RoleStaff))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_StaffNoPuede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nethttp.MethodDelete, "/solo-admin", tokenForRole(t, entity.RoleStaff))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "staff en ruta de admin debe ser 403")
}

func TestRequireRole_AdminPuede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, nethttp.MethodDelete, "/solo-admin", tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
