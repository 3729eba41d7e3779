package requests

// CreateAppointment is submitted from the booking page. Date and Time are the
// selected availability date and slot, both taken verbatim from the schedule.
type CreateAppointment struct {
	SessionData string `json:"-"`
	TherapistID string `json:"therapist_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SessionType string `json:"session_type" validate:"omitempty,oneof=video chat"`
	ClientNotes string `json:"client_notes" validate:"max=2000"`
}

type FindMyAppointments struct {
	SessionData string `json:"-"`
}
