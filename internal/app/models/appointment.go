package models

import "time"

type Appointment struct {
	ID               string    `bson:"_id"`
	ClientID         string    `bson:"client_id"`
	TherapistID      string    `bson:"therapist_id"`
	StartTime        time.Time `bson:"start_time"`
	EndTime          time.Time `bson:"end_time"`
	SessionType      string    `bson:"session_type"`
	Status           string    `bson:"status"`
	Notes            string    `bson:"notes,omitempty"`
	ClientNotes      string    `bson:"client_notes,omitempty"`
	BookingRequestID string    `bson:"booking_request_id,omitempty"`
	PaymentID        string    `bson:"payment_id,omitempty"`
	MeetingLink      string    `bson:"meeting_link,omitempty"`
	TimeModel        `bson:",inline"`
}
