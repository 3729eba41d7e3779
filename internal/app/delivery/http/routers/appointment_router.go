package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	// Anonymous visitors reach the usecase and are told to login
	router.With(middlewares.OptionalAuthenticate).Post("/", appointmentController.CreateAppointment)

	router.With(middlewares.Authenticate, middlewares.Authorize).Get("/me", appointmentController.FindMyAppointments)
}
