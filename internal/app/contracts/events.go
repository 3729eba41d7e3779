package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.DomainEvent) error
}
