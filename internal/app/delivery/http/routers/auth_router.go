package routers

import (
	"labclinics-service/internal/app/delivery/http/middlewares"
	"labclinics-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.LoginUser)
	router.With(middlewares.Authenticate).Post("/logout", authController.LogoutUser)
	router.With(middlewares.OptionalAuthenticate).Get("/session", authController.GetSession)
}
