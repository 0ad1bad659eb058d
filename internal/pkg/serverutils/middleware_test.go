package serverutils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hestia-console-be/pkg/access"
)

const testSecret = "middleware-test-secret"

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"email":   "ops@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func okHandler(ctx *fiber.Ctx) error {
	return SendSuccess(ctx, fiber.StatusOK, nil, "ok")
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareInvalidSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, okHandler)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "ROOT",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("some-other-secret"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJwtMiddlewareRejectsUnknownRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "SUPERUSER"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "role outside the enum never passes the boundary")
}

func TestJwtMiddlewareStashesCallerIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()

	var gotRole, gotId string
	app.Get("/", JwtMiddleware, func(ctx *fiber.Ctx) error {
		gotRole = CallerRole(ctx)
		gotId = CallerId(ctx)
		return okHandler(ctx)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ADMIN"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ADMIN", gotRole)
	assert.NotEmpty(t, gotId)
}

func TestRequireRolesDeniesOutsideList(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, RequireRoles("ROOT"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "USER"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, RequireRoles("ROOT", "ADMIN"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ADMIN"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRolesWildcardAdmitsAnyAuthenticated(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, RequireRoles("*"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "USER"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRolesUnauthenticatedIs401(t *testing.T) {
	app := fiber.New()
	// no JwtMiddleware in front: no role in locals
	app.Get("/", RequireRoles("*"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

type stubRegistry struct {
	snapshot *access.Snapshot
	err      error
}

func (s *stubRegistry) Snapshot(ctx context.Context) (*access.Snapshot, error) {
	return s.snapshot, s.err
}

func gateSnapshot() *access.Snapshot {
	return access.NewSnapshot([]access.Entry{
		{
			Code:         "monitoring-servers",
			Path:         "/monitoring/servers",
			Enabled:      true,
			AllowedRoles: []string{"ROOT", "ADMIN"},
		},
	})
}

func TestFeatureGateAllows(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, FeatureGate(&stubRegistry{snapshot: gateSnapshot()}, "monitoring-servers"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ADMIN"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFeatureGateDeniesRoleOutsideAllowedRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, FeatureGate(&stubRegistry{snapshot: gateSnapshot()}, "monitoring-servers"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "USER"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestFeatureGateUnauthenticatedIs401(t *testing.T) {
	app := fiber.New()
	app.Get("/", FeatureGate(&stubRegistry{snapshot: gateSnapshot()}, "monitoring-servers"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFeatureGateSnapshotErrorFailsClosed(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := fiber.New()
	app.Get("/", JwtMiddleware, FeatureGate(&stubRegistry{err: errors.New("registry down")}, "monitoring-servers"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ROOT"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "a broken registry denies, never allows")
}
