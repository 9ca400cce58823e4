package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vferraz/garage-api/internal/models"
	"github.com/vferraz/garage-api/internal/services"
	"github.com/vferraz/garage-api/internal/validation"
)

// VehicleController handles HTTP requests related to vehicles
type VehicleController interface {
	// Create registers a new vehicle
	Create(c *gin.Context)
	// List retrieves a page of vehicles
	List(c *gin.Context)
	// GetByID retrieves a vehicle by its ID
	GetByID(c *gin.Context)
	// ListByName retrieves vehicles matching a name fragment
	ListByName(c *gin.Context)
	// ListByBrand retrieves vehicles matching a brand fragment
	ListByBrand(c *gin.Context)
	// Update modifies an existing vehicle
	Update(c *gin.Context)
	// Delete removes a vehicle by its ID
	Delete(c *gin.Context)
}

type vehicleController struct {
	service services.VehicleService
}

// NewVehicleController creates a new instance of VehicleController
func NewVehicleController(service services.VehicleService) VehicleController {
	return &vehicleController{service: service}
}

// Create godoc
// @Summary Create a new vehicle
// @Description Register a vehicle. Requires the Admin or Editor profile.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body models.VehicleDTO true "Vehicle payload"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} models.ValidationError
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehicles [post]
func (vc *vehicleController) Create(ctx *gin.Context) {
	var dto models.VehicleDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if verr := validation.Vehicle(dto); verr.HasErrors() {
		ctx.JSON(http.StatusBadRequest, verr)
		return
	}

	vehicle := models.Vehicle{
		Name:  dto.Name,
		Brand: dto.Brand,
		Year:  dto.Year,
	}

	created, err := vc.service.Create(vehicle)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	ctx.Header("Location", fmt.Sprintf("/vehicle/%d", created.ID))
	ctx.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List vehicles
// @Description Get one page of vehicles, 10 per page ordered by ID, with optional name and brand filters
// @Tags vehicles
// @Accept json
// @Produce json
// @Param page query int false "1-based page index, defaults to 1"
// @Param name query string false "Filter by vehicle name (partial match)"
// @Param brand query string false "Filter by vehicle brand (partial match)"
// @Success 200 {array} models.Vehicle
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehicles [get]
func (vc *vehicleController) List(ctx *gin.Context) {
	page := parsePage(ctx.Query("page"))
	name := ctx.Query("name")
	brand := ctx.Query("brand")

	vehicles, err := vc.service.List(page, name, brand)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	ctx.JSON(http.StatusOK, vehicles)
}

// GetByID godoc
// @Summary Get vehicle by ID
// @Description Get a single vehicle by its ID
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle/{id} [get]
func (vc *vehicleController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	vehicle, err := vc.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}
	ctx.JSON(http.StatusOK, vehicle)
}

// ListByName godoc
// @Summary List vehicles by name
// @Description Get one page of vehicles whose name contains the given fragment
// @Tags vehicles
// @Accept json
// @Produce json
// @Param name path string true "Name fragment"
// @Param page query int false "1-based page index, defaults to 1"
// @Success 200 {array} models.Vehicle
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehiclesName/{name} [get]
func (vc *vehicleController) ListByName(ctx *gin.Context) {
	page := parsePage(ctx.Query("page"))
	name := ctx.Param("name")

	vehicles, err := vc.service.List(page, name, "")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	ctx.JSON(http.StatusOK, vehicles)
}

// ListByBrand godoc
// @Summary List vehicles by brand
// @Description Get one page of vehicles whose brand contains the given fragment
// @Tags vehicles
// @Accept json
// @Produce json
// @Param brand path string true "Brand fragment"
// @Param page query int false "1-based page index, defaults to 1"
// @Success 200 {array} models.Vehicle
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehiclesBrand/{brand} [get]
func (vc *vehicleController) ListByBrand(ctx *gin.Context) {
	page := parsePage(ctx.Query("page"))
	brand := ctx.Param("brand")

	vehicles, err := vc.service.List(page, "", brand)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}
	ctx.JSON(http.StatusOK, vehicles)
}

// Update godoc
// @Summary Update a vehicle
// @Description Update a vehicle with the input payload. Requires the Admin profile.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param vehicle body models.VehicleDTO true "Vehicle payload"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} models.ValidationError
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle/{id} [put]
func (vc *vehicleController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	// Existence is checked before the payload is validated, so an unknown
	// id always answers 404 even for an invalid body
	existing, err := vc.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var dto models.VehicleDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if verr := validation.Vehicle(dto); verr.HasErrors() {
		ctx.JSON(http.StatusBadRequest, verr)
		return
	}

	existing.Name = dto.Name
	existing.Brand = dto.Brand
	existing.Year = dto.Year

	updated, err := vc.service.Update(existing)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a vehicle
// @Description Delete a vehicle by its ID. Requires the Admin profile.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /vehicle/{id} [delete]
func (vc *vehicleController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if _, err := vc.service.GetByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := vc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
