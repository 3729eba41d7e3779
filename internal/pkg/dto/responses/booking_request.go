package responses

import "time"

type Profile struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
}

type BookingRequest struct {
	ID            string    `json:"id"`
	TherapistID   string    `json:"therapist_id"`
	ClientID      string    `json:"client_id"`
	RequestedDate string    `json:"requested_date"`
	RequestedTime string    `json:"requested_time"`
	Status        string    `json:"status"`
	Message       string    `json:"message,omitempty"`
	Client        *Profile  `json:"client"`
	CreatedAt     time.Time `json:"created_at"`
}
