package responses

import "time"

type Schedule struct {
	Dates    []string            `json:"dates"`
	Slots    map[string][]string `json:"slots"`
	Fallback bool                `json:"fallback"`
}

type SessionOption struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
	Free            bool   `json:"free"`
}

type TherapistBookingView struct {
	TherapistID          string          `json:"therapist_id"`
	UserID               string          `json:"user_id"`
	FullName             string          `json:"full_name"`
	ProfileImageURL      string          `json:"profile_image_url,omitempty"`
	Bio                  string          `json:"bio"`
	Specialization       string          `json:"specialization"`
	YearsExperience      int             `json:"years_experience"`
	HourlyRate           int             `json:"hourly_rate"`
	Rating               float64         `json:"rating"`
	Languages            []string        `json:"languages"`
	TherapyApproaches    []string        `json:"therapy_approaches"`
	IsCommunityTherapist bool            `json:"is_community_therapist"`
	IsVerified           bool            `json:"is_verified"`
	SessionOptions       []SessionOption `json:"session_options"`
	Schedule             Schedule        `json:"schedule"`
	SelectedDate         string          `json:"selected_date"`
	SelectedSlots        []string        `json:"selected_slots"`
}

type AdminTherapist struct {
	TherapistID          string    `json:"therapist_id"`
	UserID               string    `json:"user_id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	ProfileImageURL      string    `json:"profile_image_url,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	Location             string    `json:"location,omitempty"`
	Specialization       string    `json:"specialization"`
	LicenseNumber        string    `json:"license_number,omitempty"`
	LicenseType          string    `json:"license_type,omitempty"`
	YearsExperience      int       `json:"years_experience"`
	HourlyRate           int       `json:"hourly_rate"`
	IsVerified           bool      `json:"is_verified"`
	IsCommunityTherapist bool      `json:"is_community_therapist"`
	ApplicationStatus    string    `json:"application_status,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type ProfileImage struct {
	ProfileImageURL string `json:"profile_image_url"`
}
