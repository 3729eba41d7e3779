package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, messageController *controllers.MessageController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/", messageController.FindThread)
		r.Post("/", messageController.SendMessage)
	})
}
