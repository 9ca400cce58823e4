package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vferraz/garage-api/internal/auth"
	"github.com/vferraz/garage-api/internal/middleware"
	"github.com/vferraz/garage-api/internal/models"
	"github.com/vferraz/garage-api/internal/services"
)

const testSecret = "test-jwt-secret-key-32-characters"

// testAPI wires a full router against an in-memory database, mirroring the
// production route table
type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *auth.TokenService
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Administrator{}, &models.Vehicle{}))

	tokens, err := auth.NewTokenService(testSecret)
	require.NoError(t, err)

	adminService := services.NewAdministratorService(db)
	vehicleService := services.NewVehicleService(db)
	adminController := NewAdministratorController(adminService, tokens)
	vehicleController := NewVehicleController(vehicleService)

	adminOnly := []string{models.ProfileAdmin}
	adminOrEditor := []string{models.ProfileAdmin, models.ProfileEditor}

	table := []struct {
		method  string
		path    string
		roles   []string
		handler gin.HandlerFunc
	}{
		{http.MethodPost, "/administrators", adminOnly, adminController.Create},
		{http.MethodGet, "/administrators", adminOnly, adminController.List},
		{http.MethodGet, "/administrator/:id", adminOnly, adminController.GetByID},
		{http.MethodDelete, "/administrator/:id", adminOnly, adminController.Delete},
		{http.MethodPost, "/vehicles", adminOrEditor, vehicleController.Create},
		{http.MethodGet, "/vehicles", adminOrEditor, vehicleController.List},
		{http.MethodGet, "/vehicle/:id", adminOrEditor, vehicleController.GetByID},
		{http.MethodGet, "/vehiclesName/:name", adminOrEditor, vehicleController.ListByName},
		{http.MethodGet, "/vehiclesBrand/:brand", adminOrEditor, vehicleController.ListByBrand},
		{http.MethodPut, "/vehicle/:id", adminOnly, vehicleController.Update},
		{http.MethodDelete, "/vehicle/:id", adminOnly, vehicleController.Delete},
	}

	router := gin.New()
	router.POST("/administrators/login", adminController.Login)

	policy := middleware.Policy{}
	for _, r := range table {
		policy[middleware.RouteKey(r.method, r.path)] = r.roles
	}

	protected := router.Group("/")
	protected.Use(middleware.JWTAuth(tokens), middleware.Authorize(policy))
	for _, r := range table {
		protected.Handle(r.method, r.path, r.handler)
	}

	return &testAPI{router: router, db: db, tokens: tokens}
}

// seedAdmin persists an administrator directly and returns a bearer token
// for it
func (api *testAPI) seedAdmin(t *testing.T, email, password, profile string) (models.Administrator, string) {
	t.Helper()

	admin := models.Administrator{Email: email, Password: password, Profile: profile}
	require.NoError(t, api.db.Create(&admin).Error)

	token, err := api.tokens.Issue(admin)
	require.NoError(t, err)
	return admin, token
}

func (api *testAPI) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
