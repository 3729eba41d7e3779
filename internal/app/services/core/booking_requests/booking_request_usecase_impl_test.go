package booking_requests

import (
	"context"
	"testing"

	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRequestUsecase() (*bookingRequestUsecase, *mocks.BookingRequestRepository, *mocks.ProfileRepository, *mocks.SessionService) {
	bookingRequests := new(mocks.BookingRequestRepository)
	profiles := new(mocks.ProfileRepository)
	sessions := new(mocks.SessionService)
	return &bookingRequestUsecase{
		BookingRequestRepository: bookingRequests,
		ProfileRepository:        profiles,
		SessionService:           sessions,
		Log:                      zap.NewNop(),
	}, bookingRequests, profiles, sessions
}

func TestFindFriendBookings_MergesClientProfiles(t *testing.T) {
	uc, bookingRequests, profiles, sessions := newBookingRequestUsecase()
	sessions.On("ParseSessionData", mock.Anything, "friend").Return(&models.Session{UserID: "f-1", Role: constvars.RoleFriend}, nil)
	bookingRequests.On("FindByTherapistID", mock.Anything, "f-1").Return([]models.BookingRequest{
		{ID: "b-2", ClientID: "c-2", RequestedTime: "16:00"},
		{ID: "b-1", ClientID: "c-1", RequestedTime: "09:00"},
		{ID: "b-0", ClientID: "c-1", RequestedTime: "08:00"},
	}, nil)
	profiles.On("FindByIDs", mock.Anything, []string{"c-2", "c-1"}).Return([]models.Profile{
		{ID: "c-1", FullName: "Njeri"},
	}, nil)

	result, err := uc.FindFriendBookings(context.Background(), &requests.FindFriendBookings{SessionData: "friend"})
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, "b-2", result[0].ID)
	assert.Nil(t, result[0].Client)
	require.NotNil(t, result[1].Client)
	assert.Equal(t, "Njeri", result[1].Client.FullName)
}

func TestFindFriendClients(t *testing.T) {
	uc, bookingRequests, profiles, sessions := newBookingRequestUsecase()
	sessions.On("ParseSessionData", mock.Anything, "friend").Return(&models.Session{UserID: "f-1", Role: constvars.RoleFriend}, nil)
	bookingRequests.On("FindDistinctClientIDs", mock.Anything, "f-1").Return([]string{"c-1", "c-2"}, nil)
	profiles.On("FindByIDs", mock.Anything, []string{"c-1", "c-2"}).Return([]models.Profile{
		{ID: "c-1", FullName: "Njeri"},
		{ID: "c-2", FullName: "Baraka"},
	}, nil)

	clients, err := uc.FindFriendClients(context.Background(), &requests.FindFriendBookings{SessionData: "friend"})
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestFindFriendBookings_ClientRoleRejected(t *testing.T) {
	uc, bookingRequests, _, sessions := newBookingRequestUsecase()
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{UserID: "c-1", Role: constvars.RoleClient}, nil)

	_, err := uc.FindFriendBookings(context.Background(), &requests.FindFriendBookings{SessionData: "client"})
	require.Error(t, err)
	bookingRequests.AssertNotCalled(t, "FindByTherapistID", mock.Anything, mock.Anything)
}

func TestCreateBookingRequest(t *testing.T) {
	uc, bookingRequests, profiles, sessions := newBookingRequestUsecase()
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{UserID: "c-1", Role: constvars.RoleClient}, nil)
	profiles.On("FindByID", mock.Anything, "f-1").Return(&models.Profile{ID: "f-1", Role: constvars.RoleFriend}, nil)
	bookingRequests.On("CreateBookingRequest", mock.Anything, mock.MatchedBy(func(b *models.BookingRequest) bool {
		return b.ClientID == "c-1" && b.TherapistID == "f-1" && b.Status == constvars.BookingRequestStatusPending
	})).Return("b-1", nil)

	result, err := uc.CreateBookingRequest(context.Background(), &requests.CreateBookingRequest{
		SessionData:   "client",
		TherapistID:   "f-1",
		RequestedDate: "2024-03-12",
		RequestedTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-12", result.RequestedDate)
	bookingRequests.AssertExpectations(t)
}

func TestCreateBookingRequest_UnknownProvider(t *testing.T) {
	uc, bookingRequests, profiles, sessions := newBookingRequestUsecase()
	sessions.On("ParseSessionData", mock.Anything, "client").Return(&models.Session{UserID: "c-1", Role: constvars.RoleClient}, nil)
	profiles.On("FindByID", mock.Anything, "c-9").Return(&models.Profile{ID: "c-9", Role: constvars.RoleClient}, nil)

	_, err := uc.CreateBookingRequest(context.Background(), &requests.CreateBookingRequest{
		SessionData: "client",
		TherapistID: "c-9",
	})
	require.Error(t, err)
	bookingRequests.AssertNotCalled(t, "CreateBookingRequest", mock.Anything, mock.Anything)
}
