package routers

import (
	"fmt"
	"strings"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	therapistController *controllers.TherapistController,
	appointmentController *controllers.AppointmentController,
	bookingRequestController *controllers.BookingRequestController,
	dashboardController *controllers.DashboardController,
	messageController *controllers.MessageController,
	noteController *controllers.NoteController,
	paymentController *controllers.PaymentController,
	videoRoomController *controllers.VideoRoomController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/therapists", func(r chi.Router) {
				attachTherapistRoutes(r, middlewares, therapistController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/booking-requests", func(r chi.Router) {
				attachBookingRequestRoutes(r, middlewares, bookingRequestController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, dashboardController, therapistController)
			})

			r.Route("/friends", func(r chi.Router) {
				attachFriendRoutes(r, middlewares, dashboardController, bookingRequestController)
			})

			r.Route("/messages", func(r chi.Router) {
				attachMessageRoutes(r, middlewares, messageController)
			})

			r.Route("/notes", func(r chi.Router) {
				attachNoteRoutes(r, middlewares, noteController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})

			r.Route("/video", func(r chi.Router) {
				attachVideoRoomRoutes(r, middlewares, videoRoomController)
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
