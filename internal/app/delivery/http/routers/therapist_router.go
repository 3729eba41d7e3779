package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTherapistRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapistController *controllers.TherapistController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Put("/me/availability", therapistController.UpdateAvailability)
		r.Post("/me/profile-image", therapistController.UploadProfileImage)
		r.Get("/{therapist_id}/booking", therapistController.FindBookingView)
	})
}
