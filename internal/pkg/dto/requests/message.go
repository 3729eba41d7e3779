package requests

type FindMessages struct {
	SessionData string `json:"-"`
	PeerID      string `json:"-" validate:"required"`
}

type SendMessage struct {
	SessionData string `json:"-"`
	ReceiverID  string `json:"receiver_id"`
	Content     string `json:"content" validate:"max=5000"`
}
