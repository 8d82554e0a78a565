package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/naxxivo/storefront-api/internal/interfaces/http"
	pkgjwt "github.com/naxxivo/storefront-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "storefront-api-test"
	testExpMin    = 60
)

// identityHandler devuelve la identidad resuelta por los middlewares.
func identityHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id":  apphttp.GetUserID(c),
		"is_admin": apphttp.GetIsAdmin(c),
	})
}

// tokenFor genera un JWT con el flag de admin indicado.
func tokenFor(t *testing.T, isAdmin bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, isAdmin, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET a path y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware (obligatorio)
// ──────────────────────────────────────────────────────────────────────────────

func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), identityHandler)
	return app
}

// Caso 1: token válido → pasa y los locals quedan cargados.
func TestAuthMiddleware_TokenValido_ExtraeClaims(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "/me", tokenFor(t, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, true, body["is_admin"])
}

// Caso 2: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "/me", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "/me", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: header sin esquema Bearer → HTTP 401.
func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := doRequest(t, app, "/me", "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAuth (la vitrina se sirve anónima)
// ──────────────────────────────────────────────────────────────────────────────

func buildOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/screen", apphttp.OptionalAuth(testJWTSecret), identityHandler)
	return app
}

// Sin header la request pasa como visitante anónimo.
func TestOptionalAuth_SinHeader_PasaComoAnonimo(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/screen", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body["user_id"], "sin token el user_id debe quedar vacío")
	assert.Equal(t, false, body["is_admin"])
}

// Con token válido la identidad se resuelve igual que con el middleware obligatorio.
func TestOptionalAuth_ConToken_ResuelveIdentidad(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/screen", tokenFor(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, false, body["is_admin"])
}

// Token presente pero inválido NO degrada a anónimo: HTTP 401.
func TestOptionalAuth_TokenInvalido_Retorna401(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/screen", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

// Admin accede → HTTP 200.
func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin-only", tokenFor(t, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Cliente común bloqueado → HTTP 403 FORBIDDEN.
func TestRequireAdmin_ClienteBloqueado(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/admin-only", tokenFor(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con el flag de admin
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConAdmin(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, true, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, isAdmin, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.True(t, isAdmin)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, false, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, false, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
