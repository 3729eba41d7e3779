package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.AuthRateLimit())
		r.Post("/register", authController.RegisterUser)
		r.Post("/login", authController.LoginUser)
	})

	router.With(middlewares.Authenticate, middlewares.Authorize).Post("/logout", authController.LogoutUser)
}
