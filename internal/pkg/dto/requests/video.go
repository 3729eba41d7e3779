package requests

type OpenVideoRoom struct {
	SessionData string `json:"-"`
	ParentNode  string `json:"parent_node"`
}

type JoinVideoRoom struct {
	SessionData string `json:"-"`
	RoomName    string `json:"-" validate:"required"`
	ParentNode  string `json:"parent_node"`
}

type VideoRoomEvent struct {
	SessionData string                 `json:"-"`
	RoomName    string                 `json:"-" validate:"required"`
	Event       string                 `json:"event" validate:"required,oneof=participantJoined participantLeft videoConferenceJoined videoConferenceLeft readyToClose"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
}

type DisposeVideoRoom struct {
	SessionData string `json:"-"`
	RoomName    string `json:"-" validate:"required"`
}
