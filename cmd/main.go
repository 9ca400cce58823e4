package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/vferraz/garage-api/docs" // Import generated docs
	"github.com/vferraz/garage-api/internal/auth"
	"github.com/vferraz/garage-api/internal/config"
	"github.com/vferraz/garage-api/internal/controllers"
	"github.com/vferraz/garage-api/internal/database"
	"github.com/vferraz/garage-api/internal/middleware"
	"github.com/vferraz/garage-api/internal/models"
	"github.com/vferraz/garage-api/internal/services"
)

var (
	db                      *gorm.DB
	tokenService            *auth.TokenService
	administratorService    services.AdministratorService
	vehicleService          services.VehicleService
	administratorController controllers.AdministratorController
	vehicleController       controllers.VehicleController
	configuration           *config.Config
)

// @title Garage API
// @version 1.0
// @description CRUD API for administrators and vehicles with JWT role-based access
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration. A missing JWT secret is fatal here: tokens must
	// never be signed with an empty key.
	configuration = loadConfig()

	var err error
	tokenService, err = auth.NewTokenService(configuration.JWTSecret)
	checkPanicErr(err)

	// Initialize database connection and run migrations
	setupDatabase(configuration)

	// Initialize services and controllers
	administratorService = services.NewAdministratorService(db)
	vehicleService = services.NewVehicleService(db)
	administratorController = controllers.NewAdministratorController(administratorService, tokenService)
	vehicleController = controllers.NewVehicleController(vehicleService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and seeds the default
// administrator when the table is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Seed only if there is no administrator at all: the create endpoint
	// itself requires the Admin profile, so an empty table would lock
	// everyone out
	var count int64
	db.Model(&models.Administrator{}).Count(&count)
	if count == 0 {
		log.Info("No administrators found, seeding default account")
		seedDatabase()
	} else {
		log.Info("Administrators already present, skipping seed")
	}
	return db
}

// seedDatabase creates the bootstrap administrator account
func seedDatabase() {
	admin := models.Administrator{
		Email:    "administrator@garage.local",
		Password: "123456",
		Profile:  models.ProfileAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("Failed to seed default administrator")
		return
	}
	log.WithField("email", admin.Email).Info("Default administrator created")
}

// route binds one endpoint to its handler and the profiles allowed to call
// it. The same table that registers routes builds the authorization policy
// consulted by the middleware.
type route struct {
	method  string
	path    string
	roles   []string
	handler gin.HandlerFunc
}

// protectedRoutes is the route -> required profiles table
func protectedRoutes() []route {
	adminOnly := []string{models.ProfileAdmin}
	adminOrEditor := []string{models.ProfileAdmin, models.ProfileEditor}

	return []route{
		{http.MethodPost, "/administrators", adminOnly, administratorController.Create},
		{http.MethodGet, "/administrators", adminOnly, administratorController.List},
		{http.MethodGet, "/administrator/:id", adminOnly, administratorController.GetByID},
		{http.MethodDelete, "/administrator/:id", adminOnly, administratorController.Delete},
		{http.MethodPost, "/vehicles", adminOrEditor, vehicleController.Create},
		{http.MethodGet, "/vehicles", adminOrEditor, vehicleController.List},
		{http.MethodGet, "/vehicle/:id", adminOrEditor, vehicleController.GetByID},
		{http.MethodGet, "/vehiclesName/:name", adminOrEditor, vehicleController.ListByName},
		{http.MethodGet, "/vehiclesBrand/:brand", adminOrEditor, vehicleController.ListByBrand},
		{http.MethodPut, "/vehicle/:id", adminOnly, vehicleController.Update},
		{http.MethodDelete, "/vehicle/:id", adminOnly, vehicleController.Delete},
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	setupRoutes(router)

	return router
}

// setupRoutes registers the anonymous endpoints and the protected route
// table behind authentication and the authorization policy
func setupRoutes(router *gin.Engine) {
	// Anonymous routes
	router.GET("/", welcomeHandler)
	router.POST("/administrators/login", administratorController.Login)

	// Protected routes: authentication first, then the policy table
	table := protectedRoutes()
	policy := middleware.Policy{}
	for _, r := range table {
		policy[middleware.RouteKey(r.method, r.path)] = r.roles
	}

	protected := router.Group("/")
	protected.Use(middleware.JWTAuth(tokenService), middleware.Authorize(policy))
	for _, r := range table {
		protected.Handle(r.method, r.path, r.handler)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// welcomeHandler handles the anonymous root endpoint
// @Summary Service welcome
// @Description Check that the service is running
// @Tags home
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func welcomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the Garage API",
		"docs":      "/swagger/index.html",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "garage-api",
	})
}
