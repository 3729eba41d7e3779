package responses

import "time"

type Note struct {
	ID               string    `json:"id"`
	TherapistID      string    `json:"therapist_id"`
	ClientID         string    `json:"client_id"`
	BookingRequestID string    `json:"booking_request_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
