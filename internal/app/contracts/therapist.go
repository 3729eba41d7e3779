package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type TherapistRepository interface {
	CreateTherapist(ctx context.Context, therapist *models.Therapist) (string, error)
	FindByID(ctx context.Context, therapistID string) (*models.Therapist, error)
	FindByUserID(ctx context.Context, userID string) (*models.Therapist, error)
	FindAll(ctx context.Context) ([]models.Therapist, error)
	UpdateAvailability(ctx context.Context, therapistID string, availability interface{}) error
	UpdateVerification(ctx context.Context, therapistID string, isVerified bool, applicationStatus string) error
}

type TherapistUsecase interface {
	FindBookingView(ctx context.Context, request *requests.FindTherapistBookingView) (*responses.TherapistBookingView, error)
	UpdateAvailability(ctx context.Context, request *requests.UpdateAvailability) (*responses.Schedule, error)
	UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (*responses.ProfileImage, error)
	FindTherapists(ctx context.Context, request *requests.FindTherapists) ([]responses.AdminTherapist, error)
	UpdateVerification(ctx context.Context, request *requests.UpdateTherapistVerification) (*responses.AdminTherapist, error)
}
