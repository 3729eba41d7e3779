package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFriendRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController, bookingRequestController *controllers.BookingRequestController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/me/dashboard", dashboardController.GetFriendDashboard)
		r.Get("/me/bookings", bookingRequestController.FindFriendBookings)
		r.Get("/me/clients", bookingRequestController.FindFriendClients)
	})
}
