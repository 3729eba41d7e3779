package requests

import "encoding/json"

type FindTherapistBookingView struct {
	TherapistID string `json:"-" validate:"required"`
	Date        string `json:"-"`
}

type UpdateAvailability struct {
	SessionData  string          `json:"-"`
	Availability json.RawMessage `json:"availability" validate:"required"`
}

type UploadProfileImage struct {
	SessionData string
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

type FindTherapists struct {
	SessionData string `json:"-"`
	Search      string `json:"-"`
	Status      string `json:"-" validate:"omitempty,oneof=all verified pending active"`
}

type UpdateTherapistVerification struct {
	SessionData string `json:"-"`
	TherapistID string `json:"-" validate:"required"`
	IsVerified  *bool  `json:"is_verified" validate:"required"`
}
