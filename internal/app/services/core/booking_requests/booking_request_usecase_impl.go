package booking_requests

import (
	"context"
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

type bookingRequestUsecase struct {
	BookingRequestRepository contracts.BookingRequestRepository
	ProfileRepository        contracts.ProfileRepository
	SessionService           contracts.SessionService
	Log                      *zap.Logger
}

var (
	bookingRequestUsecaseInstance contracts.BookingRequestUsecase
	onceBookingRequestUsecase     sync.Once
)

func NewBookingRequestUsecase(
	bookingRequestRepository contracts.BookingRequestRepository,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.BookingRequestUsecase {
	onceBookingRequestUsecase.Do(func() {
		bookingRequestUsecaseInstance = &bookingRequestUsecase{
			BookingRequestRepository: bookingRequestRepository,
			ProfileRepository:        profileRepository,
			SessionService:           sessionService,
			Log:                      logger,
		}
	})
	return bookingRequestUsecaseInstance
}

func (uc *bookingRequestUsecase) CreateBookingRequest(ctx context.Context, request *requests.CreateBookingRequest) (*responses.BookingRequest, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsClient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	// The provider must exist before a request is addressed to them
	provider, err := uc.ProfileRepository.FindByID(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.IsProvider() {
		return nil, exceptions.ErrTherapistNotExist(nil)
	}

	bookingRequest := &models.BookingRequest{
		ID:            uuid.NewString(),
		TherapistID:   provider.ID,
		ClientID:      session.UserID,
		RequestedDate: request.RequestedDate,
		RequestedTime: request.RequestedTime,
		Status:        constvars.BookingRequestStatusPending,
		Message:       request.Message,
	}
	bookingRequest.SetCreatedAtUpdatedAt()

	_, err = uc.BookingRequestRepository.CreateBookingRequest(ctx, bookingRequest)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingRequestUsecase.CreateBookingRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingTherapistIDKey, provider.ID),
	)

	response := toBookingRequestResponse(bookingRequest, nil)
	return &response, nil
}

// FindFriendBookings lists requests addressed to the caller, newest slot
// first, each joined with the requesting client's profile.
func (uc *bookingRequestUsecase) FindFriendBookings(ctx context.Context, request *requests.FindFriendBookings) ([]responses.BookingRequest, error) {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	bookingRequests, err := uc.BookingRequestRepository.FindByTherapistID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]string, 0, len(bookingRequests))
	seen := make(map[string]bool, len(bookingRequests))
	for _, bookingRequest := range bookingRequests {
		if !seen[bookingRequest.ClientID] {
			seen[bookingRequest.ClientID] = true
			clientIDs = append(clientIDs, bookingRequest.ClientID)
		}
	}

	profiles, err := uc.ProfileRepository.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	profileByID := make(map[string]*responses.Profile, len(profiles))
	for i := range profiles {
		profile := toProfileResponse(&profiles[i])
		profileByID[profile.ID] = &profile
	}

	result := make([]responses.BookingRequest, 0, len(bookingRequests))
	for i := range bookingRequests {
		result = append(result, toBookingRequestResponse(&bookingRequests[i], profileByID[bookingRequests[i].ClientID]))
	}
	return result, nil
}

func (uc *bookingRequestUsecase) FindFriendClients(ctx context.Context, request *requests.FindFriendBookings) ([]responses.Profile, error) {
	session, err := uc.providerSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	clientIDs, err := uc.BookingRequestRepository.FindDistinctClientIDs(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	profiles, err := uc.ProfileRepository.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Profile, 0, len(profiles))
	for i := range profiles {
		result = append(result, toProfileResponse(&profiles[i]))
	}
	return result, nil
}

func (uc *bookingRequestUsecase) providerSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsProvider() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func toProfileResponse(profile *models.Profile) responses.Profile {
	return responses.Profile{
		ID:              profile.ID,
		FullName:        profile.FullName,
		Email:           profile.Email,
		ProfileImageURL: profile.ProfileImageURL,
		Phone:           profile.Phone,
		Location:        profile.Location,
	}
}

func toBookingRequestResponse(bookingRequest *models.BookingRequest, client *responses.Profile) responses.BookingRequest {
	return responses.BookingRequest{
		ID:            bookingRequest.ID,
		TherapistID:   bookingRequest.TherapistID,
		ClientID:      bookingRequest.ClientID,
		RequestedDate: bookingRequest.RequestedDate,
		RequestedTime: bookingRequest.RequestedTime,
		Status:        bookingRequest.Status,
		Message:       bookingRequest.Message,
		Client:        client,
		CreatedAt:     bookingRequest.CreatedAt,
	}
}
