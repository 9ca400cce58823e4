package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vferraz/garage-api/internal/models"
)

func (api *testAPI) seedVehicle(t *testing.T, name, brand string, year int) models.Vehicle {
	t.Helper()

	vehicle := models.Vehicle{Name: name, Brand: brand, Year: year}
	require.NoError(t, api.db.Create(&vehicle).Error)
	return vehicle
}

func TestCreateVehicleAsEditor(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)

	w := api.request(t, http.MethodPost, "/vehicles", token, models.VehicleDTO{
		Name:  "Fusca",
		Brand: "VW",
		Year:  1972,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("Location"))

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Fusca", created.Name)
}

func TestCreateVehicleValidation(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)

	w := api.request(t, http.MethodPost, "/vehicles", token, models.VehicleDTO{
		Name:  "Hudson",
		Brand: "Hornet",
		Year:  1949,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var verr models.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.Equal(t, []string{"year must be 1950 or later"}, verr.Messages)
}

func TestGetVehicleNotFound(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)

	w := api.request(t, http.MethodGet, "/vehicle/999", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVehicleByID(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)
	vehicle := api.seedVehicle(t, "Gol", "VW", 1995)

	w := api.request(t, http.MethodGet, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Gol", body["name"])
	assert.Equal(t, "VW", body["brand"])
}

func TestListVehiclesWithFilters(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)
	api.seedVehicle(t, "Fusca", "VW", 1972)
	api.seedVehicle(t, "Civic", "Honda", 2020)

	t.Run("unfiltered", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/vehicles", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var vehicles []models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
		assert.Len(t, vehicles, 2)
	})

	t.Run("query filter by brand", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/vehicles?brand=Honda", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var vehicles []models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
		require.Len(t, vehicles, 1)
		assert.Equal(t, "Civic", vehicles[0].Name)
	})

	t.Run("path filter by name", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/vehiclesName/Fusca", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var vehicles []models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
		require.Len(t, vehicles, 1)
		assert.Equal(t, "Fusca", vehicles[0].Name)
	})

	t.Run("path filter by brand", func(t *testing.T) {
		w := api.request(t, http.MethodGet, "/vehiclesBrand/VW", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var vehicles []models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
		require.Len(t, vehicles, 1)
		assert.Equal(t, "VW", vehicles[0].Brand)
	})
}

func TestUpdateVehicle(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)
	vehicle := api.seedVehicle(t, "Fusca", "VW", 1972)

	w := api.request(t, http.MethodPut, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, models.VehicleDTO{
		Name:  "Fusca 1300",
		Brand: "VW",
		Year:  1975,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Fusca 1300", body["name"])
	assert.Equal(t, float64(1975), body["year"])
}

func TestUpdateVehicleNotFoundBeforeValidation(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)

	// Payload is invalid too, but the unknown id must answer first
	w := api.request(t, http.MethodPut, "/vehicle/999", token, models.VehicleDTO{
		Name:  "",
		Brand: "",
		Year:  1800,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "messages")
}

func TestUpdateVehicleInvalidPayload(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)
	vehicle := api.seedVehicle(t, "Fusca", "VW", 1972)

	w := api.request(t, http.MethodPut, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, models.VehicleDTO{
		Name:  "",
		Brand: "",
		Year:  1949,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var verr models.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.Len(t, verr.Messages, 3)
}

func TestUpdateVehicleForbiddenForEditor(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)
	vehicle := api.seedVehicle(t, "Fusca", "VW", 1972)

	w := api.request(t, http.MethodPut, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, models.VehicleDTO{
		Name:  "Fusca 1300",
		Brand: "VW",
		Year:  1975,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteVehicle(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)
	vehicle := api.seedVehicle(t, "Gol", "VW", 1995)

	w := api.request(t, http.MethodDelete, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.request(t, http.MethodGet, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "admin@garage.local", "123456", models.ProfileAdmin)

	w := api.request(t, http.MethodDelete, "/vehicle/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVehicleForbiddenForEditor(t *testing.T) {
	api := setupAPI(t)
	_, token := api.seedAdmin(t, "editor@garage.local", "123456", models.ProfileEditor)
	vehicle := api.seedVehicle(t, "Gol", "VW", 1995)

	w := api.request(t, http.MethodDelete, fmt.Sprintf("/vehicle/%d", vehicle.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVehicleRoutesRequireAuthentication(t *testing.T) {
	api := setupAPI(t)

	w := api.request(t, http.MethodGet, "/vehicles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
