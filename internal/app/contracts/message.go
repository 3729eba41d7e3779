package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) (string, error)
	FindThread(ctx context.Context, userID, peerID string, limit int64) ([]models.Message, error)
}

type MessageUsecase interface {
	FindThread(ctx context.Context, request *requests.FindMessages) ([]responses.Message, error)
	SendMessage(ctx context.Context, request *requests.SendMessage) ([]responses.Message, error)
}
