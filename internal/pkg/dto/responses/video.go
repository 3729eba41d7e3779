package responses

type VideoRoom struct {
	RoomName    string            `json:"room_name"`
	Domain      string            `json:"domain"`
	MeetingLink string            `json:"meeting_link"`
	TherapistID string            `json:"therapist_id"`
	Options     VideoEmbedOptions `json:"options"`
}

type VideoEmbedOptions struct {
	RoomName                 string           `json:"roomName"`
	Width                    string           `json:"width"`
	Height                   string           `json:"height"`
	ParentNode               string           `json:"parentNode,omitempty"`
	InterfaceConfigOverwrite InterfaceConfig  `json:"interfaceConfigOverwrite"`
	ConfigOverwrite          ConferenceConfig `json:"configOverwrite"`
	UserInfo                 VideoUserInfo    `json:"userInfo"`
}

type InterfaceConfig struct {
	ShowJitsiWatermark bool `json:"SHOW_JITSI_WATERMARK"`
	ShowBrandWatermark bool `json:"SHOW_BRAND_WATERMARK"`
	ShowPoweredBy      bool `json:"SHOW_POWERED_BY"`
}

type ConferenceConfig struct {
	PrejoinPageEnabled bool `json:"prejoinPageEnabled"`
}

type VideoUserInfo struct {
	DisplayName string `json:"displayName"`
}

type VideoRoomEvent struct {
	RoomName string `json:"room_name"`
	Event    string `json:"event"`
	Disposed bool   `json:"disposed"`
}
