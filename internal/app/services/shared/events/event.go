package events

import (
	"time"

	"github.com/Bricklabsai/theralink/internal/app/models"

	"github.com/google/uuid"
)

// NewDomainEvent stamps an event with a fresh id and the current time.
func NewDomainEvent(eventType string, payload map[string]interface{}) *models.DomainEvent {
	return &models.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
