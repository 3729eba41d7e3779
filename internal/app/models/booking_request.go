package models

type BookingRequest struct {
	ID            string `bson:"_id"`
	TherapistID   string `bson:"therapist_id"`
	ClientID      string `bson:"client_id"`
	RequestedDate string `bson:"requested_date"`
	RequestedTime string `bson:"requested_time"`
	Status        string `bson:"status"`
	Message       string `bson:"message,omitempty"`
	TimeModel     `bson:",inline"`
}
