package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
	FindByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error)
	UpdateProfileImageURL(ctx context.Context, profileID, imageURL string) error
}
