package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type BookingRequestRepository interface {
	CreateBookingRequest(ctx context.Context, bookingRequest *models.BookingRequest) (string, error)
	FindByID(ctx context.Context, bookingRequestID string) (*models.BookingRequest, error)
	FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingRequest, error)
	FindDistinctClientIDs(ctx context.Context, therapistID string) ([]string, error)
}

type BookingRequestUsecase interface {
	CreateBookingRequest(ctx context.Context, request *requests.CreateBookingRequest) (*responses.BookingRequest, error)
	FindFriendBookings(ctx context.Context, request *requests.FindFriendBookings) ([]responses.BookingRequest, error)
	FindFriendClients(ctx context.Context, request *requests.FindFriendBookings) ([]responses.Profile, error)
}
