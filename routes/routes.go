package routes

import (
	"MedClinic/cache"
	"MedClinic/config"
	"MedClinic/controllers"
	"MedClinic/handlers"
	"MedClinic/middlewares"
	"MedClinic/repositories"
	"MedClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, log zerolog.Logger, db *gorm.DB, cache *cache.Cache) http.Handler {
	if config.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestIDMiddleware())
	router.Use(middlewares.LoggingMiddleware(log))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	router.Use(middlewares.NewMetrics(registry).Middleware())

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middlewares.RequestIDHeader},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
	}))

	doctorRepo := repositories.NewDoctorRepository(db, cache, log)
	patientRepo := repositories.NewPatientRepository(db, cache, log)

	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo), log)
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo, doctorRepo), log)

	controllers.SetupPatientRoutes(router, patientHandler, doctorHandler)
	controllers.SetupRootRoute(router, db, registry)

	return router
}
