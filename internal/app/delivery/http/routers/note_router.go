package routers

import (
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNoteRoutes(router chi.Router, middlewares *middlewares.Middlewares, noteController *controllers.NoteController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/", noteController.FindNotes)
		r.Post("/", noteController.CreateNote)
		r.Put("/{note_id}", noteController.UpdateNote)
		r.Delete("/{note_id}", noteController.DeleteNote)
	})
}
