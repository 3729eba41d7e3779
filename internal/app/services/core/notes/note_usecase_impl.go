package notes

import (
	"context"
	"strings"
	"sync"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type noteUsecase struct {
	NoteRepository           contracts.NoteRepository
	BookingRequestRepository contracts.BookingRequestRepository
	SessionService           contracts.SessionService
	Log                      *zap.Logger
}

var (
	noteUsecaseInstance contracts.NoteUsecase
	onceNoteUsecase     sync.Once
)

func NewNoteUsecase(
	noteRepository contracts.NoteRepository,
	bookingRequestRepository contracts.BookingRequestRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.NoteUsecase {
	onceNoteUsecase.Do(func() {
		noteUsecaseInstance = &noteUsecase{
			NoteRepository:           noteRepository,
			BookingRequestRepository: bookingRequestRepository,
			SessionService:           sessionService,
			Log:                      logger,
		}
	})
	return noteUsecaseInstance
}

func (uc *noteUsecase) FindNotes(ctx context.Context, request *requests.FindNotes) ([]responses.Note, error) {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	notes, err := uc.NoteRepository.FindByTherapistID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(request.Search))
	result := make([]responses.Note, 0, len(notes))
	for i := range notes {
		if search != "" &&
			!strings.Contains(strings.ToLower(notes[i].Title), search) &&
			!strings.Contains(strings.ToLower(notes[i].Content), search) {
			continue
		}
		result = append(result, toNoteResponse(&notes[i]))
	}
	return result, nil
}

func (uc *noteUsecase) CreateNote(ctx context.Context, request *requests.CreateNote) (*responses.Note, error) {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(request.Content)
	bookingRequestID := strings.TrimSpace(request.BookingRequestID)
	if content == "" || bookingRequestID == "" {
		return nil, exceptions.ErrNoteIncomplete(nil)
	}

	// The note inherits its client from the booking request
	bookingRequest, err := uc.BookingRequestRepository.FindByID(ctx, bookingRequestID)
	if err != nil {
		return nil, err
	}
	if bookingRequest == nil || bookingRequest.TherapistID != session.UserID {
		return nil, exceptions.ErrBookingRequestNotExist(nil)
	}

	note := &models.BookingNote{
		ID:               uuid.NewString(),
		TherapistID:      session.UserID,
		ClientID:         bookingRequest.ClientID,
		BookingRequestID: bookingRequest.ID,
		Title:            strings.TrimSpace(request.Title),
		Content:          content,
	}
	note.SetCreatedAtUpdatedAt()

	_, err = uc.NoteRepository.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("noteUsecase.CreateNote succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	response := toNoteResponse(note)
	return &response, nil
}

func (uc *noteUsecase) UpdateNote(ctx context.Context, request *requests.UpdateNote) (*responses.Note, error) {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, exceptions.ErrNoteIncomplete(nil)
	}

	note, err := uc.NoteRepository.FindByIDAndTherapistID(ctx, request.NoteID, session.UserID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNoteNotExist(nil)
	}

	note.Title = strings.TrimSpace(request.Title)
	note.Content = content
	note.SetUpdatedAt()

	err = uc.NoteRepository.UpdateNote(ctx, note)
	if err != nil {
		return nil, err
	}

	response := toNoteResponse(note)
	return &response, nil
}

func (uc *noteUsecase) DeleteNote(ctx context.Context, request *requests.DeleteNote) error {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return err
	}

	deleted, err := uc.NoteRepository.DeleteByIDAndTherapistID(ctx, request.NoteID, session.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNoteNotExist(nil)
	}
	return nil
}

func (uc *noteUsecase) providerSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsProvider() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func toNoteResponse(note *models.BookingNote) responses.Note {
	return responses.Note{
		ID:               note.ID,
		TherapistID:      note.TherapistID,
		ClientID:         note.ClientID,
		BookingRequestID: note.BookingRequestID,
		Title:            note.Title,
		Content:          note.Content,
		CreatedAt:        note.CreatedAt,
		UpdatedAt:        note.UpdatedAt,
	}
}
