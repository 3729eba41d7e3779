package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachVideoRoomRoutes(router chi.Router, middlewares *middlewares.Middlewares, videoRoomController *controllers.VideoRoomController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Post("/rooms", videoRoomController.OpenRoom)
		r.Get("/rooms/{room_name}", videoRoomController.JoinRoom)
		r.Post("/rooms/{room_name}/events", videoRoomController.HandleEvent)
		r.Delete("/rooms/{room_name}", videoRoomController.DisposeRoom)
	})
}
