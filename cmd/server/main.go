package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucasalopess/carteira-vacinacao/internal/handlers"
	"github.com/lucasalopess/carteira-vacinacao/internal/middleware"
	"github.com/lucasalopess/carteira-vacinacao/internal/repositories"
	"github.com/lucasalopess/carteira-vacinacao/internal/services"
	"github.com/lucasalopess/carteira-vacinacao/pkg/config"
	"github.com/lucasalopess/carteira-vacinacao/pkg/database"
	"github.com/lucasalopess/carteira-vacinacao/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)
	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path, config.AppConfig.Database.MigrationsDir); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	personRepo := repositories.NewPersonRepository(database.DB)
	vaccineRepo := repositories.NewVaccineRepository(database.DB)
	vaccinationRepo := repositories.NewVaccinationRepository(database.DB)

	personService := services.NewPersonService(personRepo)
	vaccineService := services.NewVaccineService(vaccineRepo)
	vaccinationService := services.NewVaccinationService(vaccinationRepo, personService, vaccineService)
	exportService := services.NewExportService(personService, vaccineService, vaccinationService)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	setupRoutes(router, personService, vaccineService, vaccinationService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, personService *services.PersonService, vaccineService *services.VaccineService, vaccinationService *services.VaccinationService, exportService *services.ExportService) {
	// Initialize handlers
	personHandler := handlers.NewPersonHandler(personService, exportService)
	vaccineHandler := handlers.NewVaccineHandler(vaccineService)
	vaccinationHandler := handlers.NewVaccinationHandler(vaccinationService)
	healthHandler := handlers.NewHealthHandler()

	people := router.Group("/people")
	{
		people.POST("", personHandler.CreatePerson)
		people.GET("", personHandler.ListPeople)
		people.GET("/sexes", personHandler.ListSexes)
		people.GET("/:id", personHandler.GetPerson)
		people.PUT("/:id", personHandler.UpdatePerson)
		people.DELETE("/:id", personHandler.DeletePerson)
		people.GET("/:id/card.xlsx", personHandler.ExportCard)
	}

	vaccines := router.Group("/vaccines")
	{
		vaccines.POST("", vaccineHandler.CreateVaccine)
		vaccines.GET("", vaccineHandler.ListVaccines)
		vaccines.GET("/:id", vaccineHandler.GetVaccine)
		vaccines.PUT("/:id", vaccineHandler.UpdateVaccine)
		vaccines.DELETE("/:id", vaccineHandler.DeleteVaccine)
	}

	vaccinations := router.Group("/vaccinations")
	{
		vaccinations.POST("", vaccinationHandler.RegisterVaccination)
		vaccinations.GET("", vaccinationHandler.ListVaccinations)
		vaccinations.GET("/:id", vaccinationHandler.GetVaccination)
		vaccinations.PUT("/:id", vaccinationHandler.UpdateVaccination)
		vaccinations.DELETE("/:id", vaccinationHandler.DeleteVaccination)
		vaccinations.GET("/person/:id", vaccinationHandler.PersonHistory)
		vaccinations.GET("/person/:id/overdue", vaccinationHandler.PersonOverdue)
	}

	// Health check and metrics endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
