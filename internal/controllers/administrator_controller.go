package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vferraz/garage-api/internal/auth"
	"github.com/vferraz/garage-api/internal/models"
	"github.com/vferraz/garage-api/internal/services"
	"github.com/vferraz/garage-api/internal/validation"
)

// AdministratorController handles HTTP requests related to administrators
type AdministratorController interface {
	// Login verifies a credential pair and returns a bearer token
	Login(c *gin.Context)
	// Create registers a new administrator
	Create(c *gin.Context)
	// List retrieves a page of administrators
	List(c *gin.Context)
	// GetByID retrieves an administrator by its ID
	GetByID(c *gin.Context)
	// Delete removes an administrator by its ID
	Delete(c *gin.Context)
}

type administratorController struct {
	service services.AdministratorService
	tokens  *auth.TokenService
}

// NewAdministratorController creates a new instance of AdministratorController
func NewAdministratorController(service services.AdministratorService, tokens *auth.TokenService) AdministratorController {
	return &administratorController{service: service, tokens: tokens}
}

// Login godoc
// @Summary Administrator login
// @Description Verify email and password and return a bearer token valid for 24 hours
// @Tags administrators
// @Accept json
// @Produce json
// @Param credentials body models.LoginDTO true "Credential pair"
// @Success 200 {object} models.AdministratorLogged
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /administrators/login [post]
func (ac *administratorController) Login(ctx *gin.Context) {
	var dto models.LoginDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	admin, err := ac.service.GetByEmail(dto.Email)
	if err != nil || admin.Password != dto.Password {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := ac.tokens.Issue(admin)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	ctx.JSON(http.StatusOK, models.AdministratorLogged{
		Email:   admin.Email,
		Profile: admin.Profile,
		Token:   token,
	})
}

// Create godoc
// @Summary Create a new administrator
// @Description Register an administrator account. Requires the Admin profile.
// @Tags administrators
// @Accept json
// @Produce json
// @Param administrator body models.AdministratorDTO true "Administrator payload"
// @Success 201 {object} models.AdministratorView
// @Failure 400 {object} models.ValidationError
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /administrators [post]
func (ac *administratorController) Create(ctx *gin.Context) {
	var dto models.AdministratorDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if verr := validation.Administrator(dto); verr.HasErrors() {
		ctx.JSON(http.StatusBadRequest, verr)
		return
	}

	admin := models.Administrator{
		Email:    dto.Email,
		Password: dto.Password,
		Profile:  dto.Profile,
	}

	created, err := ac.service.Create(admin)
	if err != nil {
		if err == services.ErrDuplicateEmail {
			ctx.JSON(http.StatusBadRequest, models.NewValidationError("email already registered"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create administrator"})
		return
	}

	ctx.Header("Location", fmt.Sprintf("/administrator/%d", created.ID))
	ctx.JSON(http.StatusCreated, created.View())
}

// List godoc
// @Summary List administrators
// @Description Get one page of administrators, 10 per page ordered by ID
// @Tags administrators
// @Accept json
// @Produce json
// @Param page query int false "1-based page index, defaults to 1"
// @Success 200 {array} models.AdministratorView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /administrators [get]
func (ac *administratorController) List(ctx *gin.Context) {
	page := parsePage(ctx.Query("page"))

	admins, err := ac.service.List(page)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve administrators"})
		return
	}

	views := make([]models.AdministratorView, 0, len(admins))
	for _, admin := range admins {
		views = append(views, admin.View())
	}
	ctx.JSON(http.StatusOK, views)
}

// GetByID godoc
// @Summary Get administrator by ID
// @Description Get a single administrator by its ID
// @Tags administrators
// @Accept json
// @Produce json
// @Param id path int true "Administrator ID"
// @Success 200 {object} models.AdministratorView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /administrator/{id} [get]
func (ac *administratorController) GetByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	admin, err := ac.service.GetByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Administrator not found"})
		return
	}
	ctx.JSON(http.StatusOK, admin.View())
}

// Delete godoc
// @Summary Delete an administrator
// @Description Delete an administrator by its ID
// @Tags administrators
// @Accept json
// @Produce json
// @Param id path int true "Administrator ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /administrator/{id} [delete]
func (ac *administratorController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if _, err := ac.service.GetByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Administrator not found"})
		return
	}

	if err := ac.service.Delete(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete administrator"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// parseID extracts the numeric id path parameter, responding with 400 on
// malformed input
func parseID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing ID"})
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}

// parsePage interprets the optional page query parameter; absence or
// malformed values fall back to the first page
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
