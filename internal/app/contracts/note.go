package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.BookingNote) (string, error)
	FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingNote, error)
	FindByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (*models.BookingNote, error)
	UpdateNote(ctx context.Context, note *models.BookingNote) error
	DeleteByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (bool, error)
}

type NoteUsecase interface {
	FindNotes(ctx context.Context, request *requests.FindNotes) ([]responses.Note, error)
	CreateNote(ctx context.Context, request *requests.CreateNote) (*responses.Note, error)
	UpdateNote(ctx context.Context, request *requests.UpdateNote) (*responses.Note, error)
	DeleteNote(ctx context.Context, request *requests.DeleteNote) error
}
