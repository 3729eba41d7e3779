package constvars

const (
	URLParamTherapistID = "therapist_id"
	URLParamNoteID      = "note_id"
	URLParamRoomName    = "room_name"
)

const (
	URLQueryParamDate   = "date"
	URLQueryParamSearch = "q"
	URLQueryParamStatus = "status"
	URLQueryParamPeerID = "peer_id"
	URLQueryParamParent = "parent_node"
)

const (
	FormFieldAvatar = "avatar"
)
