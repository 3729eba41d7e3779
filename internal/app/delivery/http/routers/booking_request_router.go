package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingRequestController *controllers.BookingRequestController) {
	router.With(middlewares.Authenticate, middlewares.Authorize).Post("/", bookingRequestController.CreateBookingRequest)
}
