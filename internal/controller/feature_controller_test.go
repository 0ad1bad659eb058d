package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/service"
	"hestia-console-be/pkg/access"
)

const testSecret = "controller-test-secret"

type stubFeatureService struct {
	features map[string]*dto.FeatureResponse
	created  []string
	deleted  []string
}

func newStubFeatureService() *stubFeatureService {
	return &stubFeatureService{features: map[string]*dto.FeatureResponse{}}
}

func (s *stubFeatureService) GetAll(ctx context.Context) ([]dto.FeatureResponse, error) {
	out := make([]dto.FeatureResponse, 0, len(s.features))
	for _, f := range s.features {
		out = append(out, *f)
	}
	return out, nil
}

func (s *stubFeatureService) GetByCode(ctx context.Context, code string) (*dto.FeatureResponse, error) {
	f, ok := s.features[code]
	if !ok {
		return nil, fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}
	return f, nil
}

func (s *stubFeatureService) Create(ctx context.Context, actor service.Actor, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	if _, ok := s.features[req.Code]; ok {
		return nil, fmt.Errorf("feature with code '%s' already exists: %w", req.Code, apperr.ErrConflict)
	}
	f := &dto.FeatureResponse{
		Id:           uuid.New(),
		Code:         req.Code,
		Name:         req.Name,
		Path:         req.Path,
		Enabled:      req.Enabled,
		AllowedRoles: req.AllowedRoles,
		Subfeatures:  []dto.SubfeatureResponse{},
	}
	s.features[req.Code] = f
	s.created = append(s.created, req.Code)
	return f, nil
}

func (s *stubFeatureService) Update(ctx context.Context, actor service.Actor, code string, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	f, ok := s.features[code]
	if !ok {
		return nil, fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}
	if req.Enabled != nil {
		f.Enabled = *req.Enabled
	}
	return f, nil
}

func (s *stubFeatureService) Delete(ctx context.Context, actor service.Actor, code string) error {
	if _, ok := s.features[code]; !ok {
		return fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}
	delete(s.features, code)
	s.deleted = append(s.deleted, code)
	return nil
}

func (s *stubFeatureService) CreateSubfeature(ctx context.Context, actor service.Actor, req *dto.CreateSubfeatureRequest) (*dto.SubfeatureResponse, error) {
	parent, ok := s.features[req.FeatureCode]
	if !ok {
		return nil, fmt.Errorf("parent feature '%s': %w", req.FeatureCode, apperr.ErrNotFound)
	}
	sf := dto.SubfeatureResponse{
		Id:           uuid.New(),
		FeatureId:    parent.Id,
		Code:         req.Code,
		Name:         req.Name,
		Path:         req.Path,
		Enabled:      req.Enabled,
		AllowedRoles: req.AllowedRoles,
	}
	parent.Subfeatures = append(parent.Subfeatures, sf)
	return &sf, nil
}

func (s *stubFeatureService) UpdateSubfeature(ctx context.Context, actor service.Actor, code string, req *dto.UpdateSubfeatureRequest) (*dto.SubfeatureResponse, error) {
	return nil, fmt.Errorf("subfeature '%s': %w", code, apperr.ErrNotFound)
}

func (s *stubFeatureService) DeleteSubfeature(ctx context.Context, actor service.Actor, code string) error {
	return fmt.Errorf("subfeature '%s': %w", code, apperr.ErrNotFound)
}

func (s *stubFeatureService) Snapshot(ctx context.Context) (*access.Snapshot, error) {
	return access.Empty(), nil
}

func (s *stubFeatureService) SetChangeListener(fn func()) {}

func newFeatureApp(svc service.IFeatureService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewFeatureController(svc).RegisterRoutes(api)
	return app
}

func rootToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestListFeaturesIsPublic(t *testing.T) {
	svc := newStubFeatureService()
	app := newFeatureApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/features", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Error)
}

func TestCreateFeatureRequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newFeatureApp(newStubFeatureService())

	body := strings.NewReader(`{"code":"dashboard","name":"Dashboard","path":"/dashboard","enabled":true,"allowedRoles":["USER"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateFeatureRequiresRootRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newFeatureApp(newStubFeatureService())

	body := strings.NewReader(`{"code":"dashboard","name":"Dashboard","path":"/dashboard","enabled":true,"allowedRoles":["USER"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ADMIN"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateFeatureAsRoot(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	svc := newStubFeatureService()
	app := newFeatureApp(svc)

	body := strings.NewReader(`{"code":"dashboard","name":"Dashboard","path":"/dashboard","enabled":true,"allowedRoles":["USER"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, []string{"dashboard"}, svc.created)

	// duplicate create maps the conflict kind onto 409
	body = strings.NewReader(`{"code":"dashboard","name":"Dashboard","path":"/dashboard","enabled":true,"allowedRoles":["USER"]}`)
	req = httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateFeatureValidatesBody(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := newFeatureApp(newStubFeatureService())

	// allowedRoles missing
	body := strings.NewReader(`{"code":"dashboard","name":"Dashboard","path":"/dashboard"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShowFeatureUnknownCodeIs404(t *testing.T) {
	app := newFeatureApp(newStubFeatureService())

	req := httptest.NewRequest(http.MethodGet, "/api/features/missing", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Error)
	assert.Contains(t, env.Message, "missing")
}

func TestSubfeatureRouteDoesNotShadowCodeParam(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	svc := newStubFeatureService()
	app := newFeatureApp(svc)

	// seed a parent through the API
	body := strings.NewReader(`{"code":"monitoring","name":"Monitoring","path":"/monitoring","enabled":true,"allowedRoles":["ROOT","ADMIN"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/features", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body = strings.NewReader(`{"featureCode":"monitoring","code":"monitoring-servers","name":"Servers","path":"/monitoring/servers","enabled":true,"allowedRoles":["ROOT","ADMIN"]}`)
	req = httptest.NewRequest(http.MethodPost, "/api/features/subfeatures", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Len(t, svc.features["monitoring"].Subfeatures, 1)
}

func TestDeleteFeature(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	svc := newStubFeatureService()
	svc.features["dashboard"] = &dto.FeatureResponse{Id: uuid.New(), Code: "dashboard"}
	app := newFeatureApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/features/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+rootToken(t, "ROOT"))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"dashboard"}, svc.deleted)
}
