package models

import "time"

// VideoRoom is the live registration of an embedded conference room.
type VideoRoom struct {
	RoomName    string    `json:"room_name"`
	TherapistID string    `json:"therapist_id"`
	OpenedBy    string    `json:"opened_by"`
	MeetingLink string    `json:"meeting_link"`
	OpenedAt    time.Time `json:"opened_at"`
}
