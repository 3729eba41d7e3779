package models

import "time"

// DomainEvent is published to the events exchange after a write succeeds.
type DomainEvent struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}
