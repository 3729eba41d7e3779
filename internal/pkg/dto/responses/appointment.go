package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	TherapistID string    `json:"therapist_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	SessionType string    `json:"session_type"`
	Status      string    `json:"status"`
	ClientNotes string    `json:"client_notes,omitempty"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAppointment struct {
	Appointment  Appointment `json:"appointment"`
	Message      string      `json:"message"`
	RedirectPath string      `json:"redirect_path"`
}
