package requests

type CreateBookingRequest struct {
	SessionData   string `json:"-"`
	TherapistID   string `json:"therapist_id" validate:"required"`
	RequestedDate string `json:"requested_date" validate:"required,date"`
	RequestedTime string `json:"requested_time" validate:"required,slot"`
	Message       string `json:"message" validate:"max=2000"`
}

type FindFriendBookings struct {
	SessionData string `json:"-"`
}
