package routers

import (
	"fmt"
	"time"

	"labclinics-service/internal/app/config"
	"labclinics-service/internal/app/delivery/http/middlewares"
	"labclinics-service/internal/app/services/core/auth"
	"labclinics-service/internal/app/services/core/directory"
	"labclinics-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	doctorController *doctors.DoctorController,
	directoryController *directory.DirectoryController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/directory", func(r chi.Router) {
				attachDirectoryRoutes(r, directoryController)
			})

			r.Route("/admin/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})
		})
	})
}
