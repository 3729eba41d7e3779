package models

type BookingNote struct {
	ID               string `bson:"_id"`
	TherapistID      string `bson:"therapist_id"`
	ClientID         string `bson:"client_id"`
	BookingRequestID string `bson:"booking_request_id"`
	Title            string `bson:"title"`
	Content          string `bson:"content"`
	TimeModel        `bson:",inline"`
}
