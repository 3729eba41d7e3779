package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController, therapistController *controllers.TherapistController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/dashboard", dashboardController.GetAdminDashboard)
		r.Get("/therapists", therapistController.FindTherapists)
		r.Put("/therapists/{therapist_id}/verification", therapistController.UpdateVerification)
	})
}
